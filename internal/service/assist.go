package service

import (
	"context"
	"fmt"
	"strings"

	"oxvocab/internal/cache"
	"oxvocab/internal/domain"
	"oxvocab/internal/llm"

	"go.uber.org/zap"
)

// Assist actions accepted by Run
const (
	ActionGenerateSentence        = "generateSentence"
	ActionGetMultipleTranslations = "getMultipleTranslations"
	ActionGenerateDefinition      = "generateDefinition"
	ActionTranslateSentence       = "translateSentence"
)

const (
	fallbackSentence     = "Example sentence is not available right now."
	fallbackTranslations = "Translations are not available right now."
	fallbackDefinition   = "Definition is not available right now."
	fallbackTranslation  = "Translation is not available right now."
)

// AssistResult is the text produced for an assist action. Field is the
// response key it belongs under.
type AssistResult struct {
	Field string
	Text  string
}

// AssistService produces sentences, translations and definitions through the LLM
type AssistService struct {
	llm    llm.Completer
	cache  cache.TranslationCache
	logger *zap.Logger
}

// NewAssistService creates a new assist service
func NewAssistService(completer llm.Completer, translationCache cache.TranslationCache, logger *zap.Logger) *AssistService {
	return &AssistService{
		llm:    completer,
		cache:  translationCache,
		logger: logger,
	}
}

// Run dispatches an assist action. Only bad input is an error; generation
// failures become fallback text.
func (s *AssistService) Run(ctx context.Context, action, word, sentence string) (AssistResult, error) {
	word = strings.TrimSpace(word)
	sentence = strings.TrimSpace(sentence)

	switch action {
	case ActionGenerateSentence, ActionGetMultipleTranslations, ActionGenerateDefinition:
		if word == "" {
			return AssistResult{}, fmt.Errorf("%w: word is required", domain.ErrValidation)
		}
	case ActionTranslateSentence:
		if sentence == "" {
			return AssistResult{}, fmt.Errorf("%w: sentence is required", domain.ErrValidation)
		}
	default:
		return AssistResult{}, fmt.Errorf("%w: invalid action", domain.ErrValidation)
	}

	switch action {
	case ActionGenerateSentence:
		return AssistResult{Field: "sentence", Text: s.Sentence(ctx, word)}, nil
	case ActionGetMultipleTranslations:
		text, err := s.Translations(ctx, word)
		if err != nil {
			text = fallbackTranslations
		}
		return AssistResult{Field: "translations", Text: text}, nil
	case ActionGenerateDefinition:
		return AssistResult{Field: "definition", Text: s.Definition(ctx, word)}, nil
	default:
		return AssistResult{Field: "translation", Text: s.TranslateSentence(ctx, sentence)}, nil
	}
}

// Sentence returns an example sentence using word
func (s *AssistService) Sentence(ctx context.Context, word string) string {
	return s.completeOr(ctx, llm.SentencePrompt(word), fallbackSentence)
}

// Definition returns a short definition of word
func (s *AssistService) Definition(ctx context.Context, word string) string {
	return s.completeOr(ctx, llm.DefinitionPrompt(word), fallbackDefinition)
}

// TranslateSentence translates an English sentence
func (s *AssistService) TranslateSentence(ctx context.Context, sentence string) string {
	return s.completeOr(ctx, llm.SentenceTranslationPrompt(sentence), fallbackTranslation)
}

// Translations returns the semicolon separated translations of word.
// Results are cached; cache failures only cost a regeneration.
func (s *AssistService) Translations(ctx context.Context, word string) (string, error) {
	if cached, ok, err := s.cache.Get(ctx, word); err != nil {
		s.logger.Warn("Translation cache read failed", zap.String("word", word), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	p := llm.TranslationsPrompt(word)
	text, err := s.llm.Complete(ctx, p.System, p.User, p.Temperature, p.MaxTokens)
	if err != nil {
		s.logger.Error("Failed to generate translations", zap.String("word", word), zap.Error(err))
		return "", fmt.Errorf("generate translations: %w", err)
	}

	if err := s.cache.Set(ctx, word, text); err != nil {
		s.logger.Warn("Translation cache write failed", zap.String("word", word), zap.Error(err))
	}
	return text, nil
}

func (s *AssistService) completeOr(ctx context.Context, p llm.Prompt, fallback string) string {
	text, err := s.llm.Complete(ctx, p.System, p.User, p.Temperature, p.MaxTokens)
	if err != nil {
		s.logger.Error("Text generation failed", zap.Error(err))
		return fallback
	}
	return text
}
