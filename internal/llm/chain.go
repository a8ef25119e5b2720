package llm

import (
	"fmt"
	"strings"
)

// ModelChain is an ordered list of model identifiers, highest quality first.
type ModelChain []string

// DefaultModelChain lists Groq free-tier models in quality order, ending with
// the always-available compound model.
var DefaultModelChain = ModelChain{
	"llama-3.3-70b-versatile",
	"openai/gpt-oss-120b",
	"llama-3.1-8b-instant",
	"moonshotai/kimi-k2-instruct-0905",
	"openai/gpt-oss-20b",
	"meta-llama/llama-4-scout-17b-16e-instruct",
	"groq/compound",
}

// Validate checks that the chain has at least one model and no blank ids.
func (c ModelChain) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("model chain must contain at least one model")
	}
	for i, model := range c {
		if strings.TrimSpace(model) == "" {
			return fmt.Errorf("model chain entry %d must not be empty", i)
		}
	}
	return nil
}

// ParseModelChain splits a comma-separated list of model ids.
func ParseModelChain(s string) ModelChain {
	var chain ModelChain
	for _, part := range strings.Split(s, ",") {
		if model := strings.TrimSpace(part); model != "" {
			chain = append(chain, model)
		}
	}
	return chain
}

// Clone returns a copy of the chain.
func (c ModelChain) Clone() ModelChain {
	out := make(ModelChain, len(c))
	copy(out, c)
	return out
}
