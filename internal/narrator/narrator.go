// Package narrator turns a finished campaign into a prose epilogue using
// Gemini. It is strictly optional: the simulation never depends on it, and
// callers skip it entirely when no API key is configured.
package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/kmazurek/coldfront/internal/models"
)

//go:embed prompts/epilogue.txt
var epiloguePrompt string

// Report is everything the narrator knows about a finished campaign.
type Report struct {
	Outcome string
	Days    int
	State   *models.WorldState
	Log     []string
}

type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func New(ctx context.Context, apiKey string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &Narrator{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// Epilogue generates the after-action prose for the report.
func (n *Narrator) Epilogue(ctx context.Context, report *Report) (string, error) {
	prompt, err := buildPrompt(report)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating epilogue: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	out := strings.TrimSpace(string(text))
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out), nil
}

func buildPrompt(report *Report) (string, error) {
	tmpl, err := template.New("epilogue").Parse(epiloguePrompt)
	if err != nil {
		return "", err
	}

	stateYAML, err := yaml.Marshal(report.State)
	if err != nil {
		return "", fmt.Errorf("encoding situation report: %w", err)
	}

	// The full command log can run long; the last stretch carries the ending.
	log := report.Log
	if len(log) > 40 {
		log = log[len(log)-40:]
	}

	var buf bytes.Buffer
	data := struct {
		Outcome   string
		Days      int
		StateYAML string
		Log       string
	}{
		Outcome:   report.Outcome,
		Days:      report.Days,
		StateYAML: string(stateYAML),
		Log:       strings.Join(log, "\n"),
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
