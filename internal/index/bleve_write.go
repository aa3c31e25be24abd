package index

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type travelIdeasSource interface {
	All() ([]model.TravelIdea, error)
}

// AddTravelIdea adds or replaces a travel idea in the index
func (b *BleveIndexer) AddTravelIdea(idea model.TravelIdea) error {
	if err := b.idx.Index(documentID(idea.ID), newTravelIdea(idea)); err != nil {
		return fmt.Errorf("error indexing travel idea %d: %w", idea.ID, err)
	}
	return nil
}

// RemoveTravelIdea removes a travel idea from the index
func (b *BleveIndexer) RemoveTravelIdea(id uint) error {
	return b.idx.Delete(documentID(id))
}

// RemoveGroup removes every travel idea belonging to the given group from the index
func (b *BleveIndexer) RemoveGroup(groupID uint) error {
	q := bleve.NewTermQuery(groupKey(groupID))
	q.SetField("GroupID")

	for {
		res, err := b.idx.Search(bleve.NewSearchRequestOptions(q, 100, 0, false))
		if err != nil {
			return err
		}
		if len(res.Hits) == 0 {
			return nil
		}

		batch := b.idx.NewBatch()
		for _, hit := range res.Hits {
			batch.Delete(hit.ID)
		}
		if err := b.idx.Batch(batch); err != nil {
			return err
		}
	}
}

// AddAll reads every travel idea from <source> and adds them to the index in batches of <batchSize>
func (b *BleveIndexer) AddAll(source travelIdeasSource, batchSize int) error {
	ideas, err := source.All()
	if err != nil {
		return err
	}
	if batchSize < 1 {
		batchSize = 1
	}

	batch := b.idx.NewBatch()
	for _, idea := range ideas {
		if err := batch.Index(documentID(idea.ID), newTravelIdea(idea)); err != nil {
			b.logger.WithError(err).Warnf("error indexing travel idea %d", idea.ID)
			continue
		}

		if batch.Size() == batchSize {
			if err := b.idx.Batch(batch); err != nil {
				return err
			}
			batch.Reset()
		}
	}
	if err := b.idx.Batch(batch); err != nil {
		return err
	}

	b.logger.Infof("indexed %d travel ideas", len(ideas))
	return nil
}
