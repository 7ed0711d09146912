package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"orders_report/internal/period"
	"orders_report/internal/report"
)

const commentarySystemPrompt = `Jesteś analitykiem sprzedaży sklepu internetowego.
Na podstawie dziennego podsumowania zamówień napisz krótki komentarz po polsku (2-4 zdania).
Porównaj kanały sprzedaży i wskaż najważniejsze produkty.
Nie wymyślaj liczb, których nie ma w danych. Odpowiedz zwykłym tekstem bez formatowania.`

type commentaryInput struct {
	Date   string        `json:"date"`
	Result report.Result `json:"result"`
}

// Comment writes a short narrative summary of the day.
func (c *Client) Comment(ctx context.Context, window period.Window, res report.Result) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	prompt, err := commentaryPrompt(window, res)
	if err != nil {
		return "", err
	}
	text, err := c.Chat(ctx, commentarySystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("commentary: %w", err)
	}
	return text, nil
}

func commentaryPrompt(window period.Window, res report.Result) (string, error) {
	raw, err := json.MarshalIndent(commentaryInput{Date: window.Label(), Result: res}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode commentary input: %w", err)
	}
	return "Podsumowanie zamówień za dzień " + window.Label() + ":\n" + string(raw), nil
}
