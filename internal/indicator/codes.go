package indicator

// WorldBankCodes maps indicator names to World Bank API v2 indicator codes
var WorldBankCodes = map[string]string{
	Inflation:          "FP.CPI.TOTL.ZG",    // CPI inflation annual %
	GDPGrowth:          "NY.GDP.MKTP.KD.ZG", // GDP growth annual %
	DebtGDP:            "GC.DOD.TOTL.GD.ZS", // Central govt debt % GDP
	ReservesMonths:     "FI.RES.TOTL.MO",    // Total reserves in months of imports
	CurrentAccount:     "BN.CAB.XOKA.GD.ZS", // Current account balance % GDP
	Unemployment:       "SL.UEM.TOTL.ZS",    // Unemployment total %
	GovExpenditure:     "GC.XPN.TOTL.GD.ZS", // Government expenditure % GDP
	TradeOpenness:      "NE.TRD.GNFS.ZS",    // Trade % GDP
	FDIInflow:          "BX.KLT.DINV.WD.GD.ZS",
	ExternalDebt:       "DT.DOD.DECT.GN.ZS", // External debt stocks % GNI
	BroadMoney:         "FM.LBL.BMNY.GD.ZS",
	DomesticCredit:     "FS.AST.PRVT.GD.ZS",
	PoliticalStability: "PV.EST", // WGI estimates, roughly -2.5..2.5
	GovEffectiveness:   "GE.EST",
	RuleOfLaw:          "RL.EST",
	ControlCorruption:  "CC.EST",
	RegulatoryQuality:  "RQ.EST",
	PopulationGrowth:   "SP.POP.GROW",
	GNIPerCapita:       "NY.GNP.PCAP.CD",
	Undernourishment:   "SN.ITK.DEFC.ZS",
	Poverty:            "SI.POV.DDAY",
	LifeExpectancy:     "SP.DYN.LE00.IN",
	LiteracyRate:       "SE.ADT.LITR.ZS",
	MaternalMortality:  "SH.STA.MMRT",
	CO2Emissions:       "EN.ATM.CO2E.PC",
}

// Market proxy series names
const (
	MarketUS10Y     = "us_10y"
	MarketVIX       = "vix"
	MarketDXY       = "dxy"
	MarketOilWTI    = "oil_wti"
	MarketGold      = "gold"
	MarketTEDSpread = "ted_spread"
	MarketUSCPI     = "us_cpi"
	MarketFedFunds  = "fed_funds"
	MarketSP500     = "sp500"
	MarketEMBI      = "embi"
)

// FREDSeries maps market proxy names to FRED series identifiers
var FREDSeries = map[string]string{
	MarketUS10Y:     "DGS10",
	MarketVIX:       "VIXCLS",
	MarketDXY:       "DTWEXBGS", // Trade weighted USD index
	MarketOilWTI:    "DCOILWTICO",
	MarketGold:      "GOLDAMGBD228NLBM",
	MarketTEDSpread: "TEDRATE",
	MarketUSCPI:     "CPIAUCSL",
	MarketFedFunds:  "FEDFUNDS",
	MarketSP500:     "SP500",
	MarketEMBI:      "BAMLEMCBPIOAS", // Emerging markets bond index spread
}

// HistoryIndicators lists the series exposed as per-country annual history
var HistoryIndicators = []string{
	Inflation,
	GDPGrowth,
	DebtGDP,
	ReservesMonths,
	CurrentAccount,
}
