package assistant

import (
	"context"
	"strings"

	"github.com/athlytiq/athlytiq/internal/gemini"
)

// Generator is the minimal model interface so this package does not
// depend on the concrete client. Ready lets canned-reply paths report a
// misconfigured backend without generating.
type Generator interface {
	Ready() error
	Generate(ctx context.Context, req gemini.GenerateRequest) (*gemini.Result, error)
}

type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Chat answers a fitness question given the caller-supplied history and
// the new message. An empty opening exchange returns the canned greeting
// without invoking the model.
func (s *Service) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	// The configuration check comes before the greeting branch; a
	// missing key fails every call, canned or not.
	if err := s.gen.Ready(); err != nil {
		return "", err
	}

	if message == "" && len(history) == 0 {
		return InitialGreeting, nil
	}

	contents := historyContents(history)
	if strings.TrimSpace(message) != "" {
		contents = append(contents, userTurn(message, nil))
	} else if len(contents) == 0 {
		// History was non-empty on the wire but every entry was blank.
		return "I'm ready for your fitness questions!", nil
	}

	req := gemini.GenerateRequest{
		Contents: contents,
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: ChatSystemInstruction}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			TopK:            1,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
		SafetySettings: gemini.SafetyBlock(gemini.BlockMediumAndAbove),
	}

	result, err := s.gen.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// AnalyzeRequest is one food-analysis call: the prompt, the prior
// exchange, and optionally the image this turn introduces.
type AnalyzeRequest struct {
	Prompt  string
	History []Turn
	Image   *Attachment
}

// AnalyzeFood sends the prompt (and image, when present) after the
// history. The image rides on the turn that introduces it and is never
// duplicated onto earlier turns.
func (s *Service) AnalyzeFood(ctx context.Context, req AnalyzeRequest) (string, error) {
	contents := historyContents(req.History)
	contents = append(contents, userTurn(req.Prompt, req.Image))

	genReq := gemini.GenerateRequest{
		Contents: contents,
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
		SafetySettings: gemini.SafetyBlock(gemini.BlockMediumAndAbove),
	}

	result, err := s.gen.Generate(ctx, genReq)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}
