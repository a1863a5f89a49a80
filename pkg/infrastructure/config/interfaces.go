package config

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	PartsSeed() string
	ProductsSeed() string
	OutputFormat() string
}
