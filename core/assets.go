package core

import "strings"

// Asset is a currency code understood by Crypto Pay. The API adds assets over
// time, so request fields accept plain strings and Asset is only a helper.
type Asset string

const (
	AssetUnknown Asset = ""

	AssetUSDT Asset = "USDT"
	AssetTON  Asset = "TON"
	AssetBTC  Asset = "BTC"
	AssetETH  Asset = "ETH"
	AssetLTC  Asset = "LTC"
	AssetBNB  Asset = "BNB"
	AssetTRX  Asset = "TRX"
	AssetUSDC Asset = "USDC"
	AssetGRAM Asset = "GRAM"
	AssetNOT  Asset = "NOT"

	AssetUSD Asset = "USD"
	AssetEUR Asset = "EUR"
	AssetRUB Asset = "RUB"
	AssetBYN Asset = "BYN"
	AssetUAH Asset = "UAH"
	AssetGBP Asset = "GBP"
	AssetCNY Asset = "CNY"
	AssetKZT Asset = "KZT"
	AssetUZS Asset = "UZS"
	AssetGEL Asset = "GEL"
	AssetTRY Asset = "TRY"
	AssetAMD Asset = "AMD"
	AssetTHB Asset = "THB"
	AssetINR Asset = "INR"
	AssetBRL Asset = "BRL"
	AssetIDR Asset = "IDR"
	AssetAZN Asset = "AZN"
	AssetAED Asset = "AED"
	AssetPLN Asset = "PLN"
	AssetILS Asset = "ILS"
)

var cryptoAssets = map[Asset]struct{}{
	AssetUSDT: {}, AssetTON: {}, AssetBTC: {}, AssetETH: {}, AssetLTC: {},
	AssetBNB: {}, AssetTRX: {}, AssetUSDC: {}, AssetGRAM: {}, AssetNOT: {},
}

var fiatAssets = map[Asset]struct{}{
	AssetUSD: {}, AssetEUR: {}, AssetRUB: {}, AssetBYN: {}, AssetUAH: {},
	AssetGBP: {}, AssetCNY: {}, AssetKZT: {}, AssetUZS: {}, AssetGEL: {},
	AssetTRY: {}, AssetAMD: {}, AssetTHB: {}, AssetINR: {}, AssetBRL: {},
	AssetIDR: {}, AssetAZN: {}, AssetAED: {}, AssetPLN: {}, AssetILS: {},
}

// ParseAsset resolves a code case-insensitively, returning AssetUnknown for
// codes this package does not know about.
func ParseAsset(code string) Asset {
	candidate := Asset(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := cryptoAssets[candidate]; ok {
		return candidate
	}
	if _, ok := fiatAssets[candidate]; ok {
		return candidate
	}
	return AssetUnknown
}

func (a Asset) String() string {
	return string(a)
}

func (a Asset) IsCrypto() bool {
	_, ok := cryptoAssets[a]
	return ok
}

func (a Asset) IsFiat() bool {
	_, ok := fiatAssets[a]
	return ok
}
