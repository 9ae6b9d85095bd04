package vertex

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"google.golang.org/api/option"
)

// Client represents the Vertex AI platform client. Generation is still a
// placeholder, so the client is only initialized and reported on.
type Client struct {
	prediction *aiplatform.PredictionClient
	projectID  string
	location   string
}

// NewClient creates a Vertex AI client bound to the regional endpoint of location
func NewClient(ctx context.Context, projectID, location string, opts ...option.ClientOption) (*Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project id is required")
	}
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}

	opts = append([]option.ClientOption{option.WithEndpoint(Endpoint(location))}, opts...)
	prediction, err := aiplatform.NewPredictionClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction client: %w", err)
	}

	return &Client{
		prediction: prediction,
		projectID:  projectID,
		location:   location,
	}, nil
}

// Endpoint returns the regional API endpoint for location
func Endpoint(location string) string {
	return fmt.Sprintf("%s-aiplatform.googleapis.com:443", location)
}

// ProjectID returns the project the client was initialized for
func (c *Client) ProjectID() string {
	return c.projectID
}

// Location returns the region the client was initialized for
func (c *Client) Location() string {
	return c.location
}

// Close releases the underlying connection
func (c *Client) Close() error {
	return c.prediction.Close()
}
