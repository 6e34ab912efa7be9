package nft

import (
	"encoding/json"
	"fmt"
	"time"
)

const passSymbol = "TICKET"

// EventMetadata is the input the registration workflow hands to the minter.
type EventMetadata struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Location    string
	EventID     string
}

// PassMetadata is the JSON document uploaded to the storage gateway and
// referenced by the minted token's URI.
type PassMetadata struct {
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitzero"`
	Attributes  []PassAttribute `json:"attributes"`
}

// PassAttribute is a single trait on the pass metadata.
type PassAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// buildPassMetadata renders the pass metadata document for an event. Location
// defaults to "TBA" upstream; the caller sets Image before marshalling.
func buildPassMetadata(meta *EventMetadata) *PassMetadata {
	return &PassMetadata{
		Name:   fmt.Sprintf("%s - Event Ticket", meta.Title),
		Symbol: passSymbol,
		Description: fmt.Sprintf(
			"Event Ticket for %s\n\nDescription: %s\nDate: %s - %s\nLocation: %s\nEvent ID: %s",
			meta.Title,
			meta.Description,
			meta.StartDate.Format("1/2/2006"),
			meta.EndDate.Format("1/2/2006"),
			meta.Location,
			meta.EventID,
		),
		Attributes: []PassAttribute{
			{TraitType: "Event ID", Value: meta.EventID},
			{TraitType: "Start Date", Value: meta.StartDate.UTC().Format(time.RFC3339)},
			{TraitType: "End Date", Value: meta.EndDate.UTC().Format(time.RFC3339)},
			{TraitType: "Location", Value: meta.Location},
		},
	}
}

// Marshal renders the metadata as JSON.
func (m *PassMetadata) Marshal() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pass metadata: %w", err)
	}
	return data, nil
}
