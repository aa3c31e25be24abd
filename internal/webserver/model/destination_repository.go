package model

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DestinationRepository struct {
	DB *gorm.DB
}

func (d *DestinationRepository) Create(destination *Destination) error {
	if result := d.DB.Create(destination); result.Error != nil {
		logrus.WithError(result.Error).Error("error creating destination")
		return result.Error
	}
	return nil
}

func (d *DestinationRepository) FindByID(id uint) (*Destination, error) {
	var destination Destination

	result := d.DB.First(&destination, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &destination, result.Error
}

func (d *DestinationRepository) List() ([]Destination, error) {
	var destinations []Destination

	if result := d.DB.Order("name ASC").Order("id ASC").Find(&destinations); result.Error != nil {
		logrus.WithError(result.Error).Error("error listing destinations")
		return nil, result.Error
	}
	return destinations, nil
}

func (d *DestinationRepository) Update(destination *Destination) error {
	if result := d.DB.Save(destination); result.Error != nil {
		logrus.WithError(result.Error).Error("error updating destination")
		return result.Error
	}
	return nil
}

func (d *DestinationRepository) Delete(destination *Destination) error {
	if result := d.DB.Delete(&Destination{}, destination.ID); result.Error != nil {
		logrus.WithError(result.Error).Error("error deleting destination")
		return result.Error
	}
	return nil
}
