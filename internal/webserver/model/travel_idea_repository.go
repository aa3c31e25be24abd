package model

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TravelIdeaRepository struct {
	DB *gorm.DB
}

func (t *TravelIdeaRepository) Create(idea *TravelIdea) error {
	if result := t.DB.Omit(clause.Associations).Create(idea); result.Error != nil {
		logrus.WithError(result.Error).Error("error creating travel idea")
		return result.Error
	}
	return nil
}

// FindInGroup returns the travel idea only if it belongs to groupID
func (t *TravelIdeaRepository) FindInGroup(groupID, id uint) (*TravelIdea, error) {
	var idea TravelIdea

	result := t.DB.Where("travel_idea_group_id = ?", groupID).First(&idea, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &idea, result.Error
}

func (t *TravelIdeaRepository) ListForGroup(groupID uint) ([]TravelIdea, error) {
	var ideas []TravelIdea

	result := t.DB.Where("travel_idea_group_id = ?", groupID).Order("id ASC").Find(&ideas)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error listing travel ideas")
		return nil, result.Error
	}
	return ideas, nil
}

// FindByIDs returns the travel ideas of a group with the given ids, keeping the order of ids
func (t *TravelIdeaRepository) FindByIDs(groupID uint, ids []uint) ([]TravelIdea, error) {
	if len(ids) == 0 {
		return []TravelIdea{}, nil
	}

	var found []TravelIdea
	result := t.DB.Where("travel_idea_group_id = ? AND id IN ?", groupID, ids).Find(&found)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error finding travel ideas")
		return nil, result.Error
	}

	byID := make(map[uint]TravelIdea, len(found))
	for _, idea := range found {
		byID[idea.ID] = idea
	}
	ideas := make([]TravelIdea, 0, len(found))
	for _, id := range ids {
		if idea, ok := byID[id]; ok {
			ideas = append(ideas, idea)
		}
	}
	return ideas, nil
}

// All returns every stored travel idea, used to build the search index
func (t *TravelIdeaRepository) All() ([]TravelIdea, error) {
	var ideas []TravelIdea

	if result := t.DB.Order("id ASC").Find(&ideas); result.Error != nil {
		logrus.WithError(result.Error).Error("error loading travel ideas")
		return nil, result.Error
	}
	return ideas, nil
}

func (t *TravelIdeaRepository) Update(idea *TravelIdea) error {
	result := t.DB.Model(idea).Select("name", "notes", "image_url").Updates(map[string]any{
		"name":      idea.Name,
		"notes":     idea.Notes,
		"image_url": idea.ImageURL,
	})
	if result.Error != nil {
		logrus.WithError(result.Error).Error("error updating travel idea")
		return result.Error
	}
	return nil
}

func (t *TravelIdeaRepository) Delete(idea *TravelIdea) error {
	if result := t.DB.Delete(&TravelIdea{}, idea.ID); result.Error != nil {
		logrus.WithError(result.Error).Error("error deleting travel idea")
		return result.Error
	}
	return nil
}
