package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_dealscan/internal/domain/service/extract"
	"tg_dealscan/internal/domain/value"
)

func TestExtractPrice(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		text  string
		price float64
		found bool
	}{
		{name: "Integer", text: "getgems 5 ton", price: 5, found: true},
		{name: "Upper case unit", text: "only 5 TON today", price: 5, found: true},
		{name: "Mixed case unit", text: "5 Ton", price: 5, found: true},
		{name: "No space", text: "price: 5ton", price: 5, found: true},
		{name: "Decimal", text: "getgems 7.9 ton", price: 7.9, found: true},
		{name: "Several spaces", text: "12.50   ton", price: 12.5, found: true},
		{name: "First occurrence wins", text: "was 9 ton, now 3 ton", price: 9, found: true},
		{name: "Number without unit is skipped", text: "1/1 limited, 3 ton", price: 3, found: true},
		{name: "Unit prefix of tonnel", text: "4 tonnel", price: 4, found: true},
		{name: "No unit", text: "getgems 5 usdt", found: false},
		{name: "No number", text: "cheap ton gift", found: false},
		{name: "Empty", text: "", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			price, ok := extract.ExtractPrice(tc.text)

			rq.Equal(tc.found, ok)
			rq.InDelta(tc.price, price, 1e-9)
		})
	}
}

func TestExtractURL(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		text  string
		url   string
		found bool
	}{
		{name: "Https", text: "Rare NFT on getgems, 1 ton, https://x", url: "https://x", found: true},
		{name: "Http", text: "see http://getgems.io/nft/1 now", url: "http://getgems.io/nft/1", found: true},
		{name: "First of many", text: "https://a.io https://b.io", url: "https://a.io", found: true},
		{name: "Scheme only", text: "https:// broken", found: false},
		{name: "No url", text: "getgems 5 ton", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			url, ok := extract.ExtractURL(tc.text)

			rq.Equal(tc.found, ok)
			rq.Equal(tc.url, url)
		})
	}
}

func TestDetectMarketplace(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		text        string
		marketplace value.Marketplace
		found       bool
	}{
		{name: "Lower case", text: "getgems 5 ton", marketplace: value.Getgems, found: true},
		{name: "Upper case", text: "PORTAL deal", marketplace: value.Portal, found: true},
		{name: "Substring", text: "via mrkt.tg", marketplace: value.Mrkt, found: true},
		{name: "Declared order wins over text order", text: "tonnel or getgems", marketplace: value.Getgems, found: true},
		{name: "Unknown", text: "fragment 5 ton", found: false},
		{name: "Empty", text: "", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			m, ok := extract.DetectMarketplace(tc.text)

			rq.Equal(tc.found, ok)
			rq.Equal(tc.marketplace, m)
		})
	}
}

func TestIsRare(t *testing.T) {
	rq := require.New(t)

	keywords := []string{"rare", "limited", "1/1"}

	rq.True(extract.IsRare("Rare NFT", keywords))
	rq.True(extract.IsRare("LIMITED drop", keywords))
	rq.True(extract.IsRare("edition 1/1", keywords))
	rq.True(extract.IsRare("rarely seen", keywords))
	rq.False(extract.IsRare("common gift", keywords))
	rq.False(extract.IsRare("rare", nil))
}

func TestExtract(t *testing.T) {
	rq := require.New(t)

	text := "Rare NFT on getgems, 1 ton, https://x"

	facts := extract.Extract(text, []string{"rare"})

	rq.Equal(text, facts.RawText)
	rq.Equal(value.Getgems, facts.Marketplace)
	rq.True(facts.HasMarketplace())
	rq.NotNil(facts.Price)
	rq.InDelta(1.0, *facts.Price, 1e-9)
	rq.Equal("https://x", facts.URL)
	rq.True(facts.IsRare)

	empty := extract.Extract("hello", []string{"rare"})

	rq.False(empty.HasMarketplace())
	rq.Nil(empty.Price)
	rq.Empty(empty.URL)
	rq.False(empty.IsRare)
}
