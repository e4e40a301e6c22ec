package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// Client talks to the Gemini generateContent endpoint. It does a single
// synchronous request per chat message, no retries and no streaming.
type Client struct {
	client  http.Client
	apiKey  string
	baseURL string
}

// UpstreamError carries the raw upstream error body so the handler can relay it
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

func NewClient(apiKey, baseURL string) Client {
	return Client{
		client:  http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

type generateContentRq struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentRes struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Chat sends a single-turn message and returns the first candidate's text
func (c Client) Chat(message string) (string, error) {
	rq := generateContentRq{
		Contents: []content{
			{Parts: []part{{Text: message}}},
		},
	}
	jsonRq, err := json.Marshal(rq)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL, bytes.NewBuffer(jsonRq))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("x-goog-api-key", c.apiKey)
	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: res.StatusCode, Body: string(body)}
	}
	var out generateContentRes
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{StatusCode: res.StatusCode, Body: "no candidates in upstream response"}
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
