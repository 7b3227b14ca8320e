package config

import "time"

type WikidataConfig interface {
	GetWikidataBaseURL() string
	GetWikidataTimeout() time.Duration
}

type Wikidata struct{}

var _ WikidataConfig = Wikidata{}

func (Wikidata) GetWikidataBaseURL() string {
	return GetEnv("WIKIDATA_URL", "https://www.wikidata.org/w/api.php")
}

func (Wikidata) GetWikidataTimeout() time.Duration {
	return 20 * time.Second
}
