package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/leafyapp/leafy/internal/models"
)

func (s *Store) AddPlant(plant models.PlantDetails) error {
	careJSON, err := json.Marshal(plant.Care)
	if err != nil {
		return fmt.Errorf("failed to marshal care instructions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO plants (
			id, common_name, scientific_name, description, health_status,
			is_plant, care, identified_at, image_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plant.ID, plant.CommonName, plant.ScientificName, plant.Description,
		plant.HealthStatus, plant.IsPlant, string(careJSON),
		plant.Timestamp.UnixMilli(), plant.ImagePath,
	)
	return err
}

func (s *Store) GetAllPlants() ([]models.PlantDetails, error) {
	rows, err := s.db.Query(`
		SELECT id, common_name, scientific_name, description, health_status,
		       is_plant, care, identified_at, image_path
		FROM plants ORDER BY identified_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.PlantDetails
	for rows.Next() {
		var p models.PlantDetails
		var careJSON string
		var identifiedAt int64

		err := rows.Scan(&p.ID, &p.CommonName, &p.ScientificName, &p.Description,
			&p.HealthStatus, &p.IsPlant, &careJSON, &identifiedAt, &p.ImagePath)
		if err != nil {
			return nil, err
		}

		p.Timestamp = time.UnixMilli(identifiedAt)
		if err := json.Unmarshal([]byte(careJSON), &p.Care); err != nil {
			p.Care = models.CareInstructions{}
		}
		plants = append(plants, p)
	}

	return plants, rows.Err()
}

func (s *Store) DeletePlant(id string) error {
	_, err := s.db.Exec("DELETE FROM plants WHERE id = ?", id)
	return err
}

func (s *Store) ClearPlants() error {
	_, err := s.db.Exec("DELETE FROM plants")
	return err
}
