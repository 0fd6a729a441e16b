package twse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twstock/tracker/internal/core"
)

// market query values for the realtime endpoint.
const (
	marketTSE = "tse"
	marketOTC = "otc"
)

// FetchQuote fetches the real-time quote for a symbol, trying the
// listed market first and falling back to the OTC market when the
// listed lookup succeeds but matches nothing. Only an empty result
// set triggers the fallback; a transport or HTTP-status failure means
// the proxy itself is unwell and propagates as a hard error. When both
// markets come back empty the symbol does not exist and
// core.ErrSymbolNotFound is returned.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*core.Quote, error) {
	if c.baseURL == "" {
		return nil, core.ErrProxyUnset
	}

	quote, found, err := c.fetchMarketQuote(ctx, symbol, marketTSE)
	if err != nil {
		return nil, err
	}
	if found {
		return quote, nil
	}

	quote, found, err = c.fetchMarketQuote(ctx, symbol, marketOTC)
	if err != nil {
		return nil, err
	}
	if found {
		return quote, nil
	}

	return nil, core.ErrSymbolNotFound
}

// fetchMarketQuote queries one market. found is false when the proxy
// answered successfully but the symbol is absent from that market.
func (c *Client) fetchMarketQuote(ctx context.Context, symbol, market string) (*core.Quote, bool, error) {
	url := fmt.Sprintf("%s/api/twse/stock/realtime/%s?market=%s", c.baseURL, symbol, market)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, false, core.WrapError(core.ErrProxyHTTP, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, core.WrapError(core.ErrProxyHTTP,
			fmt.Errorf("realtime %s: status %d", market, resp.StatusCode))
	}

	var result realtimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, core.WrapError(core.ErrProxyHTTP, fmt.Errorf("decoding response: %w", err))
	}

	if !result.Success || len(result.Data.MsgArray) == 0 {
		return nil, false, nil
	}

	return toQuote(result.Data.MsgArray[0], market), true, nil
}

// toQuote maps one abbreviated msgArray entry into a core.Quote.
// z is the last trade price; before the first trade of the day it is
// empty and the previous close stands in for it.
func toQuote(m realtimeMsg, market string) *core.Quote {
	price := parseFloat(m.Z)
	if price == 0 {
		price = parseFloat(m.Y)
	}

	q := &core.Quote{
		Symbol:        m.C,
		Name:          m.N,
		Price:         price,
		Open:          parseFloat(m.O),
		High:          parseFloat(m.H),
		Low:           parseFloat(m.L),
		Volume:        parseInt64(m.V),
		PreviousClose: parseFloat(m.Y),
		Change:        parseFloat(m.TV),
		ChangePercent: parseFloat(m.PZ),
		UpdateTime:    m.T,
	}

	if market == marketOTC {
		q.Market = core.MarketOTC
		q.Source = "OTC-即時"
	} else {
		q.Market = core.MarketListed
		q.Source = "TSE-即時"
	}
	return q
}

// Wire types for the realtime endpoint. The upstream uses one-letter
// keys; everything arrives as strings.
type realtimeResponse struct {
	Success bool         `json:"success"`
	Data    realtimeData `json:"data"`
}

type realtimeData struct {
	MsgArray []realtimeMsg `json:"msgArray"`
}

type realtimeMsg struct {
	C  string `json:"c"`  // symbol
	N  string `json:"n"`  // display name
	Z  string `json:"z"`  // last trade price
	Y  string `json:"y"`  // previous close
	O  string `json:"o"`  // open
	H  string `json:"h"`  // high
	L  string `json:"l"`  // low
	V  string `json:"v"`  // volume
	TV string `json:"tv"` // price change
	PZ string `json:"pz"` // percent change
	T  string `json:"t"`  // update time
}
