package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client interface {
	FetchCSV(csvURL string) (string, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCSV baixa o export CSV publicado da planilha. O Google Sheets
// responde o publish-to-web com redirecionamentos, que o http.Client
// padrão já segue.
func (c *SheetsClient) FetchCSV(csvURL string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	return string(data), nil
}
