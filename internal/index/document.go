package index

import (
	"strconv"

	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

// TravelIdea is the representation of a travel idea stored in the index
type TravelIdea struct {
	GroupID  string
	Name     string
	Notes    string
	ImageURL string
}

func (t TravelIdea) BleveType() string {
	return "travel_idea"
}

func newTravelIdea(idea model.TravelIdea) TravelIdea {
	doc := TravelIdea{
		GroupID:  groupKey(idea.GroupID),
		Name:     idea.Name,
		ImageURL: idea.ImageURL,
	}
	if idea.Notes != nil {
		doc.Notes = *idea.Notes
	}
	return doc
}

func documentID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func groupKey(groupID uint) string {
	return strconv.FormatUint(uint64(groupID), 10)
}
