package models

type CasesResult struct {
	Region string `json:"region"`
	Date   string `json:"date"`
	Cases  int64  `json:"cases"`
}

type TopRegion struct {
	Rank   int    `json:"rank"`
	Region string `json:"region"`
	Cases  int64  `json:"cases"`
}

type TopRegionsPage struct {
	Date   string      `json:"date"`
	Data   []TopRegion `json:"data"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

type UnchangedResult struct {
	Date     string `json:"date"`
	Previous string `json:"previous"`
	Count    int    `json:"count"`
}

type DatasetInfo struct {
	Rows    int      `json:"rows"`
	Regions int      `json:"regions"`
	Dates   []string `json:"dates"`
}
