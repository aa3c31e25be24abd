package index

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// Results are fetched from the index in pages of this size
const searchPageSize = 100

// Search looks for travel ideas of the given group which match every one of the passed keywords,
// either in their name or notes. Returns a maximum of <limit> ids, best matches first.
// A non positive limit returns every match.
func (b *BleveIndexer) Search(groupID uint, keywords string, limit int) ([]uint, error) {
	words := strings.Fields(keywords)
	if len(words) == 0 {
		return []uint{}, nil
	}

	groupQuery := bleve.NewTermQuery(groupKey(groupID))
	groupQuery.SetField("GroupID")
	compound := bleve.NewConjunctionQuery(groupQuery)

	for _, keyword := range words {
		nameQuery := bleve.NewMatchQuery(keyword)
		nameQuery.SetField("Name")
		nameQuery.SetBoost(2)

		notesQuery := bleve.NewMatchQuery(keyword)
		notesQuery.SetField("Notes")

		compound.AddQuery(bleve.NewDisjunctionQuery(nameQuery, notesQuery))
	}

	ids := []uint{}
	for from := 0; limit <= 0 || from < limit; from += searchPageSize {
		size := searchPageSize
		if limit > 0 && limit-from < size {
			size = limit - from
		}

		searchOptions := bleve.NewSearchRequestOptions(compound, size, from, false)
		searchOptions.SortBy([]string{"-_score", "_id"})
		searchResult, err := b.idx.Search(searchOptions)
		if err != nil {
			return nil, err
		}

		for _, hit := range searchResult.Hits {
			id, err := strconv.ParseUint(hit.ID, 10, 64)
			if err != nil {
				b.logger.WithError(err).Warnf("unexpected document id %q in index", hit.ID)
				continue
			}
			ids = append(ids, uint(id))
		}

		if len(searchResult.Hits) < size {
			break
		}
	}
	return ids, nil
}

// Count returns the number of indexed travel ideas
func (b *BleveIndexer) Count() (uint64, error) {
	return b.idx.DocCount()
}
