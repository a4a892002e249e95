package onlineweb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"techtalks/internal/domain"
)

// DefaultBaseURL is the public Onlineweb host.
const DefaultBaseURL = "https://online.ntnu.no"

type companyImage struct {
	Original string `json:"original"`
}

type companyDTO struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Image *companyImage `json:"image"`
}

type companiesResponse struct {
	Results []companyDTO `json:"results"`
}

type companyDirectory struct {
	client  *http.Client
	baseURL string
}

// NewCompanyDirectory returns a CompanyDirectory backed by the Onlineweb companies API.
func NewCompanyDirectory(client *http.Client, baseURL string) domain.CompanyDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &companyDirectory{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (d *companyDirectory) Search(ctx context.Context, name string) ([]*domain.DirectoryCompany, error) {
	endpoint := d.baseURL + "/api/v1/companies?" + url.Values{"name": {name}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from onlineweb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onlineweb api returned status: %d", resp.StatusCode)
	}

	var data companiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode onlineweb response: %w", err)
	}

	companies := make([]*domain.DirectoryCompany, 0, len(data.Results))
	for _, c := range data.Results {
		dc := &domain.DirectoryCompany{ID: c.ID, Name: c.Name}
		if c.Image != nil && c.Image.Original != "" {
			// The stored logo is the image id, the last path segment of the original image.
			dc.Logo = path.Base(c.Image.Original)
			dc.ImageURL = d.baseURL + c.Image.Original
		}
		companies = append(companies, dc)
	}
	return companies, nil
}
