package domain

// DatasetSource identifica a origem de um conjunto de dados carregado,
// conforme validado na camada de ingestão
type DatasetSource string

const (
	DatasetSourceSeed   DatasetSource = "seed"
	DatasetSourceManual DatasetSource = "manual"
	DatasetSourceCSV    DatasetSource = "csv"
)

// Dataset é o snapshot imutável das quatro coleções de registros de uma
// sessão de análise. Nenhum cálculo modifica o snapshot; uploads substituem
// o snapshot inteiro e todo valor derivado é recalculado do zero
type Dataset struct {
	Source      DatasetSource   `json:"source"`
	Influencers []*Influencer   `json:"influencers"`
	Posts       []*Post         `json:"posts"`
	Tracking    []*TrackingData `json:"tracking"`
	Payouts     []*Payout       `json:"payouts"`
}

// OrphanStats contabiliza registros cuja chave estrangeira não corresponde a
// nenhum influenciador conhecido. Registros órfãos não entram em nenhum
// agregado por influenciador, mas são expostos como diagnóstico em vez de
// descartados de forma totalmente silenciosa
type OrphanStats struct {
	Posts    int `json:"posts"`
	Tracking int `json:"tracking"`
	Payouts  int `json:"payouts"`
}

// Total retorna o total de registros órfãos em todas as coleções
func (o OrphanStats) Total() int {
	return o.Posts + o.Tracking + o.Payouts
}

// DatasetSummary descreve o snapshot ativo: tamanho das coleções e o
// diagnóstico de registros órfãos
type DatasetSummary struct {
	Source      DatasetSource `json:"source"`
	Influencers int           `json:"influencers"`
	Posts       int           `json:"posts"`
	Tracking    int           `json:"tracking"`
	Payouts     int           `json:"payouts"`
	Orphans     OrphanStats   `json:"orphans"`
}
