package kana

// Row order matches how textbooks present the gojūon table: basic rows,
// then dakuon, then handakuon.
var (
	hiraganaBasicRows     = []string{"あ行", "か行", "さ行", "た行", "な行", "は行", "ま行", "や行", "ら行", "わ行"}
	hiraganaDakuonRows    = []string{"が行", "ざ行", "だ行", "ば行"}
	hiraganaHandakuonRows = []string{"ぱ行"}

	katakanaBasicRows     = []string{"ア行", "カ行", "サ行", "タ行", "ナ行", "ハ行", "マ行", "ヤ行", "ラ行", "ワ行"}
	katakanaDakuonRows    = []string{"ガ行", "ザ行", "ダ行", "バ行"}
	katakanaHandakuonRows = []string{"パ行"}
)

var hiraganaRows = map[string][]Item{
	"あ行": {
		{Glyph: "あ", Romaji: "a"},
		{Glyph: "い", Romaji: "i"},
		{Glyph: "う", Romaji: "u"},
		{Glyph: "え", Romaji: "e"},
		{Glyph: "お", Romaji: "o"},
	},
	"か行": {
		{Glyph: "か", Romaji: "ka"},
		{Glyph: "き", Romaji: "ki"},
		{Glyph: "く", Romaji: "ku"},
		{Glyph: "け", Romaji: "ke"},
		{Glyph: "こ", Romaji: "ko"},
	},
	"さ行": {
		{Glyph: "さ", Romaji: "sa"},
		{Glyph: "し", Romaji: "shi"},
		{Glyph: "す", Romaji: "su"},
		{Glyph: "せ", Romaji: "se"},
		{Glyph: "そ", Romaji: "so"},
	},
	"た行": {
		{Glyph: "た", Romaji: "ta"},
		{Glyph: "ち", Romaji: "chi"},
		{Glyph: "つ", Romaji: "tsu"},
		{Glyph: "て", Romaji: "te"},
		{Glyph: "と", Romaji: "to"},
	},
	"な行": {
		{Glyph: "な", Romaji: "na"},
		{Glyph: "に", Romaji: "ni"},
		{Glyph: "ぬ", Romaji: "nu"},
		{Glyph: "ね", Romaji: "ne"},
		{Glyph: "の", Romaji: "no"},
	},
	"は行": {
		{Glyph: "は", Romaji: "ha"},
		{Glyph: "ひ", Romaji: "hi"},
		{Glyph: "ふ", Romaji: "fu"},
		{Glyph: "へ", Romaji: "he"},
		{Glyph: "ほ", Romaji: "ho"},
	},
	"ま行": {
		{Glyph: "ま", Romaji: "ma"},
		{Glyph: "み", Romaji: "mi"},
		{Glyph: "む", Romaji: "mu"},
		{Glyph: "め", Romaji: "me"},
		{Glyph: "も", Romaji: "mo"},
	},
	"や行": {
		{Glyph: "や", Romaji: "ya"},
		{Glyph: "ゆ", Romaji: "yu"},
		{Glyph: "よ", Romaji: "yo"},
	},
	"ら行": {
		{Glyph: "ら", Romaji: "ra"},
		{Glyph: "り", Romaji: "ri"},
		{Glyph: "る", Romaji: "ru"},
		{Glyph: "れ", Romaji: "re"},
		{Glyph: "ろ", Romaji: "ro"},
	},
	"わ行": {
		{Glyph: "わ", Romaji: "wa"},
		{Glyph: "を", Romaji: "wo"},
		{Glyph: "ん", Romaji: "n"},
	},
	"が行": {
		{Glyph: "が", Romaji: "ga"},
		{Glyph: "ぎ", Romaji: "gi"},
		{Glyph: "ぐ", Romaji: "gu"},
		{Glyph: "げ", Romaji: "ge"},
		{Glyph: "ご", Romaji: "go"},
	},
	"ざ行": {
		{Glyph: "ざ", Romaji: "za"},
		{Glyph: "じ", Romaji: "ji"},
		{Glyph: "ず", Romaji: "zu"},
		{Glyph: "ぜ", Romaji: "ze"},
		{Glyph: "ぞ", Romaji: "zo"},
	},
	"だ行": {
		{Glyph: "だ", Romaji: "da"},
		{Glyph: "ぢ", Romaji: "ji"},
		{Glyph: "づ", Romaji: "zu"},
		{Glyph: "で", Romaji: "de"},
		{Glyph: "ど", Romaji: "do"},
	},
	"ば行": {
		{Glyph: "ば", Romaji: "ba"},
		{Glyph: "び", Romaji: "bi"},
		{Glyph: "ぶ", Romaji: "bu"},
		{Glyph: "べ", Romaji: "be"},
		{Glyph: "ぼ", Romaji: "bo"},
	},
	"ぱ行": {
		{Glyph: "ぱ", Romaji: "pa"},
		{Glyph: "ぴ", Romaji: "pi"},
		{Glyph: "ぷ", Romaji: "pu"},
		{Glyph: "ぺ", Romaji: "pe"},
		{Glyph: "ぽ", Romaji: "po"},
	},
}

var katakanaRows = map[string][]Item{
	"ア行": {
		{Glyph: "ア", Romaji: "a"},
		{Glyph: "イ", Romaji: "i"},
		{Glyph: "ウ", Romaji: "u"},
		{Glyph: "エ", Romaji: "e"},
		{Glyph: "オ", Romaji: "o"},
	},
	"カ行": {
		{Glyph: "カ", Romaji: "ka"},
		{Glyph: "キ", Romaji: "ki"},
		{Glyph: "ク", Romaji: "ku"},
		{Glyph: "ケ", Romaji: "ke"},
		{Glyph: "コ", Romaji: "ko"},
	},
	"サ行": {
		{Glyph: "サ", Romaji: "sa"},
		{Glyph: "シ", Romaji: "shi"},
		{Glyph: "ス", Romaji: "su"},
		{Glyph: "セ", Romaji: "se"},
		{Glyph: "ソ", Romaji: "so"},
	},
	"タ行": {
		{Glyph: "タ", Romaji: "ta"},
		{Glyph: "チ", Romaji: "chi"},
		{Glyph: "ツ", Romaji: "tsu"},
		{Glyph: "テ", Romaji: "te"},
		{Glyph: "ト", Romaji: "to"},
	},
	"ナ行": {
		{Glyph: "ナ", Romaji: "na"},
		{Glyph: "ニ", Romaji: "ni"},
		{Glyph: "ヌ", Romaji: "nu"},
		{Glyph: "ネ", Romaji: "ne"},
		{Glyph: "ノ", Romaji: "no"},
	},
	"ハ行": {
		{Glyph: "ハ", Romaji: "ha"},
		{Glyph: "ヒ", Romaji: "hi"},
		{Glyph: "フ", Romaji: "fu"},
		{Glyph: "ヘ", Romaji: "he"},
		{Glyph: "ホ", Romaji: "ho"},
	},
	"マ行": {
		{Glyph: "マ", Romaji: "ma"},
		{Glyph: "ミ", Romaji: "mi"},
		{Glyph: "ム", Romaji: "mu"},
		{Glyph: "メ", Romaji: "me"},
		{Glyph: "モ", Romaji: "mo"},
	},
	"ヤ行": {
		{Glyph: "ヤ", Romaji: "ya"},
		{Glyph: "ユ", Romaji: "yu"},
		{Glyph: "ヨ", Romaji: "yo"},
	},
	"ラ行": {
		{Glyph: "ラ", Romaji: "ra"},
		{Glyph: "リ", Romaji: "ri"},
		{Glyph: "ル", Romaji: "ru"},
		{Glyph: "レ", Romaji: "re"},
		{Glyph: "ロ", Romaji: "ro"},
	},
	"ワ行": {
		{Glyph: "ワ", Romaji: "wa"},
		{Glyph: "ヲ", Romaji: "wo"},
		{Glyph: "ン", Romaji: "n"},
	},
	"ガ行": {
		{Glyph: "ガ", Romaji: "ga"},
		{Glyph: "ギ", Romaji: "gi"},
		{Glyph: "グ", Romaji: "gu"},
		{Glyph: "ゲ", Romaji: "ge"},
		{Glyph: "ゴ", Romaji: "go"},
	},
	"ザ行": {
		{Glyph: "ザ", Romaji: "za"},
		{Glyph: "ジ", Romaji: "ji"},
		{Glyph: "ズ", Romaji: "zu"},
		{Glyph: "ゼ", Romaji: "ze"},
		{Glyph: "ゾ", Romaji: "zo"},
	},
	"ダ行": {
		{Glyph: "ダ", Romaji: "da"},
		{Glyph: "ヂ", Romaji: "ji"},
		{Glyph: "ヅ", Romaji: "zu"},
		{Glyph: "デ", Romaji: "de"},
		{Glyph: "ド", Romaji: "do"},
	},
	"バ行": {
		{Glyph: "バ", Romaji: "ba"},
		{Glyph: "ビ", Romaji: "bi"},
		{Glyph: "ブ", Romaji: "bu"},
		{Glyph: "ベ", Romaji: "be"},
		{Glyph: "ボ", Romaji: "bo"},
	},
	"パ行": {
		{Glyph: "パ", Romaji: "pa"},
		{Glyph: "ピ", Romaji: "pi"},
		{Glyph: "プ", Romaji: "pu"},
		{Glyph: "ペ", Romaji: "pe"},
		{Glyph: "ポ", Romaji: "po"},
	},
}
