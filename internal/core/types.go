package core

// Market represents the market a symbol trades on
type Market string

const (
	MarketListed Market = "上市"
	MarketOTC    Market = "上櫃"
)

// ConnectionState represents the proxy connection state of a session
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateTesting      ConnectionState = "testing"
	StateConnected    ConnectionState = "connected"
	StateFailed       ConnectionState = "failed"
	StateManual       ConnectionState = "manual"
)

// Ready reports whether fetches may proceed in this state.
func (s ConnectionState) Ready() bool {
	return s == StateConnected || s == StateManual
}

// Quote represents a real-time price quote
type Quote struct {
	Symbol        string
	Name          string
	Market        Market
	Price         float64
	Open          float64
	High          float64
	Low           float64
	Volume        int64
	PreviousClose float64
	Change        float64
	ChangePercent float64
	Source        string
	UpdateTime    string
}

// IsValid checks if the quote has required fields
func (q Quote) IsValid() bool {
	return q.Symbol != "" && q.Price > 0
}

// HistoryPoint represents one published daily record
type HistoryPoint struct {
	Date   string // YYYY-MM-DD
	Close  float64
	Open   float64
	High   float64
	Low    float64
	Volume int64
	Source string
}

// SeriesPoint is a history point placed into a tracked series
type SeriesPoint struct {
	HistoryPoint
	Label       string
	DisplayDate string
	Index       int
}

// IsValid reports whether the point carries a usable price.
func (p SeriesPoint) IsValid() bool {
	return p.Close > 0
}

// Series is an assembled price series with derived analytics
type Series struct {
	Symbol        string
	Name          string
	Market        Market
	Source        string
	UpdateTime    string
	Points        []SeriesPoint
	ValidCount    int
	StartPrice    float64
	EndPrice      float64
	Change        float64
	ChangePercent float64
	StartDate     string
	EndDate       string
}
