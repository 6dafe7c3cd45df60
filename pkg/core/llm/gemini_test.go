package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedCall struct {
	path   string
	apiKey string
	body   map[string]interface{}
}

func fakeGemini(t *testing.T, reply string) (*httptest.Server, *[]capturedCall) {
	t.Helper()
	var calls []capturedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		_ = json.Unmarshal(raw, &body)
		calls = append(calls, capturedCall{path: r.URL.Path, apiKey: r.Header.Get("x-goog-api-key"), body: body})
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	p := &GeminiProvider{}
	_, err := p.GenerateContent(context.Background(), Request{Model: "m", UserContent: "x"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestLegacyGeminiProvider_RequiresKey(t *testing.T) {
	p := &LegacyGeminiProvider{}
	_, err := p.GenerateContent(context.Background(), Request{Model: "m", UserContent: "x"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGeminiProvider_SendsRequestAndReturnsText(t *testing.T) {
	srv, calls := fakeGemini(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"# خدمة العملاء"}]}}]}`)
	p := &GeminiProvider{BaseURL: srv.URL}

	resp, err := p.GenerateContent(context.Background(), Request{
		Model:             "gemini-3-flash-preview",
		SystemInstruction: "be a consultant",
		UserContent:       "Generate KPAs and KPIs for the following practice: خدمة العملاء",
		Temperature:       0.7,
		APIKey:            "env-key",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Text)
	assert.Equal(t, "# خدمة العملاء", *resp.Text)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.True(t, strings.HasSuffix(call.path, "models/gemini-3-flash-preview:generateContent"), call.path)
	assert.Equal(t, "env-key", call.apiKey)

	gen, _ := call.body["generationConfig"].(map[string]interface{})
	require.NotNil(t, gen)
	assert.InDelta(t, 0.7, gen["temperature"], 0.0001)
	assert.Contains(t, toJSON(call.body["systemInstruction"]), "be a consultant")
	assert.Contains(t, toJSON(call.body["contents"]), "خدمة العملاء")
}

func TestGeminiProvider_NoCandidatesIsAbsentText(t *testing.T) {
	srv, _ := fakeGemini(t, `{"candidates":[]}`)
	p := &GeminiProvider{BaseURL: srv.URL}

	resp, err := p.GenerateContent(context.Background(), Request{Model: "m", UserContent: "x", APIKey: "k"})
	require.NoError(t, err)
	assert.Nil(t, resp.Text)
	assert.Equal(t, "", resp.TextOrEmpty())
}

func TestResponse_TextOrEmpty(t *testing.T) {
	var nilResp *Response
	assert.Equal(t, "", nilResp.TextOrEmpty())

	s := "T"
	assert.Equal(t, "T", (&Response{Text: &s}).TextOrEmpty())
}

func toJSON(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
