package gemini

import "context"

// FakeClient is a test implementation of Client.
type FakeClient struct {
	Response string
	Err      error

	// LastPrompt and LastContext record the most recent call.
	LastPrompt  string
	LastContext string
}

func NewFakeClient(response string) *FakeClient {
	return &FakeClient{Response: response}
}

func (c *FakeClient) Generate(ctx context.Context, prompt, contextText string) (string, error) {
	c.LastPrompt = prompt
	c.LastContext = contextText
	if c.Err != nil {
		return "", c.Err
	}
	return c.Response, nil
}
