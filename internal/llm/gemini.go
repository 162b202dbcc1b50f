// Package llm provides the text generation, transcription and speech
// synthesis capabilities used by the interview service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/openkcm/interview-manager/internal/config"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

const transcriptionPrompt = "Transcribe this spoken interview answer verbatim. " +
	"Return only the transcription without any commentary."

var ErrEmptyResponse = errors.New("model returned empty content")

// Client talks to Gemini, either through the Gemini API or Vertex AI.
type Client struct {
	client      *genai.Client
	modelName   string
	speechModel string
	voice       string
}

// NewClient creates a client for the configured backend. apiKey is only
// used by the Gemini API backend.
func NewClient(ctx context.Context, cfg *config.Model, apiKey string) (*Client, error) {
	clientCfg := &genai.ClientConfig{}
	switch cfg.Backend {
	case config.ModelVertex:
		if cfg.Project == "" || cfg.Location == "" {
			return nil, errors.New("project and location must be set for the vertex backend")
		}
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = cfg.Project
		clientCfg.Location = cfg.Location
	case config.ModelGemini, "":
		if apiKey == "" {
			return nil, errors.New("api key must be set for the gemini backend")
		}
		clientCfg.Backend = genai.BackendGeminiAPI
		clientCfg.APIKey = apiKey
	default:
		return nil, fmt.Errorf("unsupported model backend %q", cfg.Backend)
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	modelName := cfg.Name
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &Client{
		client:      client,
		modelName:   modelName,
		speechModel: cfg.SpeechName,
		voice:       cfg.Voice,
	}, nil
}

// GenerateText implements interview.TextGenerator. Sampling runs at
// temperature zero so the same exchange is assessed the same way.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", errors.Join(serviceerr.ErrModel, fmt.Errorf("generate content: %w", err))
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", errors.Join(serviceerr.ErrModel, ErrEmptyResponse)
	}

	return text, nil
}

// Transcribe implements interview.Transcriber by sending the audio inline
// together with a transcription instruction.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", errors.Join(serviceerr.ErrTranscription, fmt.Errorf("generate content: %w", err))
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", errors.Join(serviceerr.ErrTranscription, ErrEmptyResponse)
	}

	return text, nil
}

// Synthesize implements interview.Synthesizer. The model returns raw PCM
// which is wrapped into a WAV container.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: c.voice,
				},
			},
		},
	}

	res, err := c.client.Models.GenerateContent(ctx, c.speechModel, genai.Text(text), cfg)
	if err != nil {
		return nil, errors.Join(serviceerr.ErrSynthesis, fmt.Errorf("generate content: %w", err))
	}

	pcm, sampleRate := inlineAudio(res)
	if len(pcm) == 0 {
		return nil, errors.Join(serviceerr.ErrSynthesis, ErrEmptyResponse)
	}

	wav, err := wavFromPCM(pcm, sampleRate)
	if err != nil {
		return nil, errors.Join(serviceerr.ErrSynthesis, err)
	}

	return wav, nil
}

func inlineAudio(res *genai.GenerateContentResponse) ([]byte, int) {
	if res == nil {
		return nil, 0
	}

	for _, candidate := range res.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			return part.InlineData.Data, sampleRateFromMIME(part.InlineData.MIMEType)
		}
	}

	return nil, 0
}
