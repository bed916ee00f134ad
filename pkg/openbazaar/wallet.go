package openbazaar

import (
	"context"
	"net/http"
)

// GetWalletBalance returns confirmed and unconfirmed balances in satoshis.
func (c *Client) GetWalletBalance(ctx context.Context) (*WalletBalance, error) {
	var out WalletBalance
	if err := c.call(ctx, "GetWalletBalance", http.MethodGet, "/wallet/balance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExchangeRate returns the coin price in every currency the daemon knows.
func (c *Client) GetExchangeRate(ctx context.Context) (ExchangeRates, error) {
	var out ExchangeRates
	if err := c.call(ctx, "GetExchangeRate", http.MethodGet, "/ob/exchangerate", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAddress returns a receiving address of the store wallet.
func (c *Client) GetAddress(ctx context.Context) (*Address, error) {
	var out Address
	if err := c.call(ctx, "GetAddress", http.MethodGet, "/wallet/address", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMoney spends from the store wallet. FeeLevel defaults to ECONOMIC.
func (c *Client) SendMoney(ctx context.Context, req SpendRequest) (*SpendResult, error) {
	var out SpendResult
	if err := c.call(ctx, "SendMoney", http.MethodPost, "/wallet/spend", ApplySpendDefaults(req), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
