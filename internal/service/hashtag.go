package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_hashtag_service.go -package=mocks -mock_names=HashtagService=MockHashtagService tagtemanin/internal/service HashtagService

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tagtemanin/internal/contextutil"
	"tagtemanin/internal/llm"
	"tagtemanin/internal/normalize"
)

// HashtagTierSize is the number of entries in every hashtag tier and in the emoji list.
const HashtagTierSize = 10

const (
	hashtagTemperature float32 = 0.7
	hashtagMaxTokens           = 1024
)

const (
	fieldMacro = "macro"
	fieldMid   = "mid"
	fieldMicro = "micro"
	fieldEmoji = "emoji"
	fieldReach = "reach"
)

// DefaultReach is used when the model gives no usable reach estimate.
var DefaultReach = Reach{Macro: "50K–200K", Mid: "5K–50K", Micro: "500–5K"}

// HashtagRequest represents a hashtag research request.
type HashtagRequest struct {
	Keyword string
}

// Reach holds a human-readable reach range per hashtag tier.
type Reach struct {
	Macro string `json:"macro"`
	Mid   string `json:"mid"`
	Micro string `json:"micro"`
}

// HashtagResponse holds HashtagTierSize entries per tier plus reach estimates.
type HashtagResponse struct {
	Macro []string
	Mid   []string
	Micro []string
	Emoji []string
	Reach Reach
}

// HashtagService researches hashtags for a keyword.
type HashtagService interface {
	// Generate returns tiered hashtags, emoji and reach estimates for the keyword.
	Generate(ctx context.Context, req HashtagRequest) (HashtagResponse, error)
}

type hashtagService struct {
	caller Caller
}

// NewHashtagService creates a new HashtagService.
func NewHashtagService(caller Caller) HashtagService {
	return &hashtagService{caller: caller}
}

// Generate builds the hashtag prompt, calls the model chain and repairs the
// output into the fixed tier shape.
func (s *hashtagService) Generate(ctx context.Context, req HashtagRequest) (HashtagResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Keyword) == "" {
		logger.WarnContext(ctx, "empty keyword in hashtag request")
		return HashtagResponse{}, &ValidationError{Field: "keyword", Message: "cannot be empty"}
	}

	raw, err := s.caller.Call(ctx, llm.GenerationRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: hashtagSystemPrompt},
			{Role: llm.RoleUser, Content: buildHashtagPrompt(req)},
		},
		Temperature: llm.Temp(hashtagTemperature),
		MaxTokens:   hashtagMaxTokens,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate hashtags", "error", err)
		return HashtagResponse{}, WrapError(classifyCallError(err), "failed to generate hashtags")
	}

	obj := HashtagShape(req.Keyword).Normalize(raw)
	resp := HashtagResponse{
		Macro: obj[fieldMacro].([]string),
		Mid:   obj[fieldMid].([]string),
		Micro: obj[fieldMicro].([]string),
		Emoji: obj[fieldEmoji].([]string),
		Reach: reachFrom(obj[fieldReach]),
	}

	logger.InfoContext(ctx, "hashtags generated", "keyword", req.Keyword, "raw_length", len(raw))
	return resp, nil
}

// HashtagShape returns the repair shape for a keyword. Fillers and the
// fallback object are derived from the keyword.
func HashtagShape(keyword string) normalize.KeyedShape {
	tag := hashtagWord(keyword)
	title := titleWord(keyword)

	return normalize.KeyedShape{
		Arrays: map[string]normalize.ArrayField{
			fieldMacro: {Length: HashtagTierSize, Filler: "#Indonesia"},
			fieldMid:   {Length: HashtagTierSize, Filler: "#" + tag},
			fieldMicro: {Length: HashtagTierSize, Filler: "#" + tag + "Lokal"},
			fieldEmoji: {Length: HashtagTierSize, Filler: "🔥"},
		},
		Scalars: map[string]any{
			fieldReach: reachMap(DefaultReach),
		},
		Default: map[string]any{
			fieldMacro: []string{"#Indonesia", "#UMKM", "#OnlineShopping", "#Jualan", "#Marketplace", "#Bisnis", "#TikTokShop", "#ShopeeIndonesia", "#LokalBangga", "#JualanOnline"},
			fieldMid:   suffixed(title, "Indo", "UMKM", "Online", "Terbaik", "Promo", "Jakarta", "Murah", "Jualan", "Sale", "Viral"),
			fieldMicro: suffixed(title, "Asli", "Original", "LocalBrand", "MadeInIndonesia", "Review", "Testimoni", "Rekomendasi", "Produk", "Quality", "Terpercaya"),
			fieldEmoji: []string{"🔥", "✨", "💎", "🚀", "😍", "👀", "💯", "⚡", "🎯", "🤩"},
			fieldReach: reachMap(DefaultReach),
		},
	}
}

// hashtagWord removes whitespace so the keyword can follow a '#'.
func hashtagWord(keyword string) string {
	return strings.Join(strings.Fields(keyword), "")
}

// titleWord title-cases each word of the keyword and joins them, e.g.
// "kopi lokal" becomes "KopiLokal". A hashtag ends at the first space, so the
// words are joined and the capitals keep them readable.
func titleWord(keyword string) string {
	caser := cases.Title(language.Indonesian)
	return hashtagWord(caser.String(strings.ToLower(keyword)))
}

func suffixed(base string, suffixes ...string) []string {
	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = "#" + base + s
	}
	return out
}

func reachMap(r Reach) map[string]any {
	return map[string]any{
		fieldMacro: r.Macro,
		fieldMid:   r.Mid,
		fieldMicro: r.Micro,
	}
}

func reachFrom(v any) Reach {
	m, _ := v.(map[string]any)
	pick := func(key, def string) string {
		if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
		return def
	}
	return Reach{
		Macro: pick(fieldMacro, DefaultReach.Macro),
		Mid:   pick(fieldMid, DefaultReach.Mid),
		Micro: pick(fieldMicro, DefaultReach.Micro),
	}
}
