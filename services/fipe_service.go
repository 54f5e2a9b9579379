// File: /services/fipe_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FipeService queries the public FIPE table API, a read-only market price
// oracle. The core works fully without it; every failure here is surfaced as
// ErrPriceReferenceUnavailable and never aborts an unrelated operation.
type FipeService struct {
	baseURL string
	client  *http.Client
}

// ErrPriceReferenceUnavailable wraps any transport or decoding failure when
// talking to the FIPE API.
type ErrPriceReferenceUnavailable struct {
	Err error
}

func (e *ErrPriceReferenceUnavailable) Error() string {
	return fmt.Sprintf("price reference service unavailable: %v", e.Err)
}

func (e *ErrPriceReferenceUnavailable) Unwrap() error {
	return e.Err
}

var fipeVehicleTypes = map[string]bool{
	"cars":        true,
	"motorcycles": true,
	"trucks":      true,
}

func IsValidFipeVehicleType(vehicleType string) bool {
	return fipeVehicleTypes[vehicleType]
}

func NewFipeService(baseURL string) *FipeService {
	return &FipeService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type FipeReference struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FipePrice struct {
	Brand          string `json:"brand"`
	CodeFipe       string `json:"codeFipe"`
	Fuel           string `json:"fuel"`
	FuelAcronym    string `json:"fuelAcronym"`
	Model          string `json:"model"`
	ModelYear      int    `json:"modelYear"`
	Price          string `json:"price"`
	ReferenceMonth string `json:"referenceMonth"`
	VehicleType    int    `json:"vehicleType"`
}

func (s *FipeService) GetBrands(vehicleType string) ([]FipeReference, error) {
	var brands []FipeReference
	url := fmt.Sprintf("%s/%s/brands", s.baseURL, vehicleType)
	if err := s.get(url, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *FipeService) GetModels(vehicleType, brandCode string) ([]FipeReference, error) {
	var fipeModels []FipeReference
	url := fmt.Sprintf("%s/%s/brands/%s/models", s.baseURL, vehicleType, brandCode)
	if err := s.get(url, &fipeModels); err != nil {
		return nil, err
	}
	return fipeModels, nil
}

func (s *FipeService) GetYears(vehicleType, brandCode, modelCode string) ([]FipeReference, error) {
	var years []FipeReference
	url := fmt.Sprintf("%s/%s/brands/%s/models/%s/years", s.baseURL, vehicleType, brandCode, modelCode)
	if err := s.get(url, &years); err != nil {
		return nil, err
	}
	return years, nil
}

func (s *FipeService) GetPrice(vehicleType, brandCode, modelCode, yearCode string) (*FipePrice, error) {
	var price FipePrice
	url := fmt.Sprintf("%s/%s/brands/%s/models/%s/years/%s", s.baseURL, vehicleType, brandCode, modelCode, yearCode)
	if err := s.get(url, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (s *FipeService) get(url string, out interface{}) error {
	resp, err := s.client.Get(url)
	if err != nil {
		return &ErrPriceReferenceUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ErrPriceReferenceUnavailable{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ErrPriceReferenceUnavailable{Err: err}
	}
	return nil
}
