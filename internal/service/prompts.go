package service

import (
	"fmt"
	"sort"
	"strings"
)

var regionContext = map[string]string{
	"Jogja":    `Daerah: Yogyakarta. Gunakan slang Jogja yang natural seperti "yooo", "santai ae", "wkwk", "nggak jelas". Sisipkan emoji lokal: 🏯🧁☕🌸💜. Frasa khas: "Saklik!", "Santai ae".`,
	"Makassar": `Daerah: Makassar. Gunakan slang Makassar yang natural seperti "anging", "kaddee", "santai ji", "bale". Sisipkan emoji lokal: 🦀🌊🔥⚡🎯. Frasa khas: "Makassar style", "Santai ji bro", "Hei bale!".`,
	"Medan":    `Daerah: Medan. Gunakan slang Medan yang natural seperti "lae", "bah", "tak", "kheloo". Sisipkan emoji lokal: 🥩🌶️💪🔥😤. Frasa khas: "Medan punya!", "Santai lae", "Tak takut".`,
}

var platformContext = map[string]string{
	"Instagram": "Platform: Instagram. Caption boleh panjang (max 2200 karakter). Taruh hashtag di komentar pertama, jangan di caption. Gunakan line break dan emoji untuk visual.",
	"TikTok":    "Platform: TikTok. Caption harus singkat dan punchy (max 150 karakter). Hashtag langsung di caption. Tone energik dan viral.",
	"Facebook":  "Platform: Facebook. Caption boleh lebih santai dan panjang. Hashtag secukupnya (3-5 max). Tone lebih personal dan relatable.",
}

var toneContext = map[string]string{
	"Humoris": "Tone: Humoris dan lucu. Buat pembaca ketawa atau senyum. Boleh pakai wordplay atau situasi relatable yang lucu.",
	"Religi":  "Tone: Religi dan inspiring. Sisipkan kata-kata positif, syukuran, atau kutipan motivatif ringan. Akhiri dengan ucapan seperti 'Barakallah' atau 'Semoga bermanfaat 🌙'.",
	"Gen-Z":   "Tone: Gen-Z / Viral. Gunakan bahasa yang trendy: 'no cap', 'fr fr', 'bestie', 'literally', 'it's giving'. Energi tinggi, emoji banyak, vibe aesthetic.",
}

const captionSystemPrompt = "Kamu adalah copywriter Indonesia ahli sosmed. Selalu respond HANYA dengan JSON array of strings. Tanpa markdown, tanpa penjelasan."

const hashtagSystemPrompt = "Kamu adalah ahli hashtag Indonesia. Respond HANYA dengan JSON object sesuai format yang diminta. Tanpa markdown fences, tanpa penjelasan."

// Regions lists the supported regional styles.
func Regions() []string { return optionKeys(regionContext) }

// Platforms lists the supported target platforms.
func Platforms() []string { return optionKeys(platformContext) }

// Tones lists the supported tones.
func Tones() []string { return optionKeys(toneContext) }

func optionKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func buildCaptionPrompt(req CaptionRequest) string {
	var b strings.Builder
	b.WriteString("Kamu adalah copywriter Indonesia berpengalaman yang ahli bikin konten sosmed untuk UMKM lokal.\n\n")
	b.WriteString(regionContext[req.Region] + "\n")
	b.WriteString(platformContext[req.Platform] + "\n")
	b.WriteString(toneContext[req.Tone] + "\n\n")
	fmt.Fprintf(&b, "Produk / Keyword: %q\n\n", req.Keyword)
	fmt.Fprintf(&b, "Buatkan PERSIS %d varian caption yang siap pakai. Masing-masing caption harus:\n", CaptionCount)
	b.WriteString(`- Unik dan berbeda satu sama lain (jangan monoton)
- Pakai slang & emoji daerah yang natural, bukan maksa
- Sesuai platform dan tone yang diminta
- Relevan untuk UMKM / jualan online
- Singkat, catchy, dan langsung bikin orang tertarik

Format output HANYA JSON array of strings, tanpa penjelasan tambahan. Contoh:
["caption 1...", "caption 2...", "caption 3...", "caption 4...", "caption 5..."]
`)
	return b.String()
}

func buildHashtagPrompt(req HashtagRequest) string {
	var b strings.Builder
	b.WriteString("Kamu adalah ahli riset hashtag dan strategi konten untuk pasar Indonesia.\n\n")
	fmt.Fprintf(&b, "Keyword yang mau diriset: %q\n\n", req.Keyword)
	fmt.Fprintf(&b, `Buatkan riset hashtag yang komprehensif untuk pasar Indonesia. Ikuti struktur ini PERSIS:

1. MACRO hashtag (%[1]d buah): Hashtag dengan volume tinggi, populer di Indonesia. Campurin antara yang relevan ke keyword dan yang general trending di Indonesia.
2. MID-TIER hashtag (%[1]d buah): Hashtag yang lebih spesifik ke niche/kategori keyword. Volume sedang tapi engagement lebih tinggi.
3. MICRO hashtag (%[1]d buah): Hashtag sangat spesifik, low competition tapi high engagement. Kombinasi keyword + atribut spesifik.
4. VIRAL EMOJI (%[1]d buah): Emoji yang lagi trending dan sering dipakai di konten Indonesia. Pilih yang boost engagement.
5. ESTIMASI REACH per segmen berdasarkan analisis pasar Indonesia.

PENTING:
- Semua hashtag pakai "#" di depan
- Mix bahasa Indonesia dan English yang natural untuk pasar Indo
- Relevan ke keyword tapi juga discoverable

Output HANYA JSON dengan format ini (tanpa markdown, tanpa penjelasan):
{
  "macro": ["#hashtag1", ...],
  "mid": ["#hashtag1", ...],
  "micro": ["#hashtag1", ...],
  "emoji": ["🔥", ...],
  "reach": {
    "macro": "perkiraan reach range",
    "mid": "perkiraan reach range",
    "micro": "perkiraan reach range"
  }
}
`, HashtagTierSize)
	return b.String()
}
