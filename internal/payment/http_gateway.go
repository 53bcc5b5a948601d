package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

const apiVersion = "2025-06-01"

type httpGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

// NewHTTPGateway talks to a charge-API style processor at baseURL.
func NewHTTPGateway(baseURL, apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("payment API key is empty")
	}

	return &httpGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- Charge -----------------

func (g *httpGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("reference", req.Reference),
		zap.Int64("amount", req.Amount),
		zap.String("method", req.Method),
	)

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	body := map[string]interface{}{
		"reference_id": req.Reference,
		"amount":       req.Amount,
		"currency":     "IDR",
		"method":       req.Method,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal charge request", zap.Error(err))
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/charges", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}

	httpReq.SetBasicAuth(g.apiKey, "")
	httpReq.Header.Add("Content-Type", "application/json")
	httpReq.Header.Add("api-version", apiVersion)

	log.Info("sending charge to payment processor")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("charge request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("%w: reading response: %v", ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("processor returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}

	var res ChargeResult
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding processor response", zap.Error(err))
		return nil, fmt.Errorf("%w: decoding response: %v", ErrGateway, err)
	}

	if res.Status != "PAID" && res.Status != "SUCCEEDED" {
		log.Warn("charge declined",
			zap.String("charge_id", res.ChargeID),
			zap.String("status", res.Status),
		)
		return nil, fmt.Errorf("%w: status %s", ErrChargeDeclined, res.Status)
	}

	log.Info("charge accepted",
		zap.String("charge_id", res.ChargeID),
		zap.String("status", res.Status),
	)

	return &res, nil
}
