package index

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/sirupsen/logrus"
)

const analyzerName = "travel_idea"

type BleveIndexer struct {
	idx    bleve.Index
	logger *logrus.Entry
}

// NewBleve creates a new BleveIndexer instance using the passed index
func NewBleve(index bleve.Index) *BleveIndexer {
	return &BleveIndexer{
		idx:    index,
		logger: logrus.WithField("logger", "index"),
	}
}

// NewMemOnly creates a BleveIndexer backed by an in-memory index
func NewMemOnly() (*BleveIndexer, error) {
	idx, err := bleve.NewMemOnly(Mapping())
	if err != nil {
		return nil, err
	}
	return NewBleve(idx), nil
}

func Mapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer(analyzerName,
		map[string]interface{}{
			"type": custom.Name,
			"char_filters": []string{
				asciifolding.Name,
			},
			"tokenizer": unicode.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		logrus.WithField("logger", "index").Fatal(err)
	}
	indexMapping.DefaultAnalyzer = analyzerName

	groupFieldMapping := bleve.NewKeywordFieldMapping()
	indexMapping.DefaultMapping.AddFieldMappingsAt("GroupID", groupFieldMapping)
	imageFieldMapping := bleve.NewTextFieldMapping()
	imageFieldMapping.Index = false
	indexMapping.DefaultMapping.AddFieldMappingsAt("ImageURL", imageFieldMapping)

	return indexMapping
}

// Close closes the index
func (b *BleveIndexer) Close() error {
	return b.idx.Close()
}
