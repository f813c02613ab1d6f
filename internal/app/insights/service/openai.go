package insights_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
)

type modelInsights struct {
	Insights   []string `json:"insights" jsonschema:"maxItems=3" jsonschema_description:"Up to three short operational insights about the hold data"`
	KeyPhrases []string `json:"key_phrases" jsonschema_description:"Short key phrases naming causes, locations or dispositions"`
}

func generateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var insightsSchema = openai.ResponseFormatJSONSchemaJSONSchemaParam{
	Name:        "rework_insights",
	Description: openai.String("Insights about quality-hold KPIs"),
	Schema:      generateSchema[modelInsights](),
	Strict:      openai.Bool(true),
}

const systemPrompt = "You are a manufacturing quality analyst. Given a summary of quality holds and their KPIs, " +
	"write at most three short, concrete insights and a few key phrases. Return ONLY the JSON required by the schema."

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

var _ app.InsightsProvider = &OpenAIProvider{}

func NewOpenAIProvider(client *openai.Client, model string) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: model}
}

func (this *OpenAIProvider) Name() string {
	return "openai"
}

func (this *OpenAIProvider) Generate(ctx context.Context, req dtos.InsightsRequest) (*dtos.InsightsResponse, error) {
	input, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	chat, err := this.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf("INPUT_JSON:\n%s", input)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: insightsSchema,
			},
		},
		Seed:  openai.Int(42),
		Model: openai.ChatModel(this.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.New("openai: empty choices")
	}

	var out modelInsights
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("unmarshal model output: %w", err)
	}
	return &dtos.InsightsResponse{Insights: out.Insights, KeyPhrases: out.KeyPhrases}, nil
}
