// Package cdn pulls game data from the public content delivery
// network: the versioned item catalog plus the recipe and harvest
// tables used to classify how each item is obtained.
package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmangon/wakdrop-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/catalog/cdn")

const defaultBaseUrl = "https://wakfu.cdn.ankama.com"

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 60)
	telemetry.InstrumentResty(client, "services/catalog/cdn/http")

	return &Client{http: client}
}

// CurrentVersion probes the CDN for the active gamedata version.
func (c *Client) CurrentVersion(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "CurrentVersion")
	defer span.End()

	var config struct {
		Version string `json:"version"`
	}
	err := c.getJson(ctx, "/gamedata/config.json", &config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if config.Version == "" {
		err := fmt.Errorf("cdn config carries no version")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.String("version", config.Version))
	return config.Version, nil
}

// RawItem mirrors the CDN's items.json shape. Only the fields the
// catalog needs are decoded.
type RawItem struct {
	Definition struct {
		Item struct {
			ID             int64 `json:"id"`
			Level          int64 `json:"level"`
			BaseParameters struct {
				ItemTypeID int64 `json:"itemTypeId"`
				Rarity     int64 `json:"rarity"`
			} `json:"baseParameters"`
		} `json:"item"`
	} `json:"definition"`
	Title map[string]string `json:"title"`
}

// Name prefers the French title, falling back to English.
func (r RawItem) Name() string {
	if name := r.Title["fr"]; name != "" {
		return name
	}
	return r.Title["en"]
}

type RawRecipeResult struct {
	RecipeID        int64 `json:"recipeId"`
	ProductedItemID int64 `json:"productedItemId"`
}

type RawHarvestLoot struct {
	ItemID int64 `json:"itemId"`
}

type RawItemProperty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Client) Items(ctx context.Context, version string) ([]RawItem, error) {
	var items []RawItem
	return items, c.getGamedata(ctx, version, "items", &items)
}

func (c *Client) RecipeResults(ctx context.Context, version string) ([]RawRecipeResult, error) {
	var results []RawRecipeResult
	return results, c.getGamedata(ctx, version, "recipeResults", &results)
}

func (c *Client) HarvestLoots(ctx context.Context, version string) ([]RawHarvestLoot, error) {
	var loots []RawHarvestLoot
	return loots, c.getGamedata(ctx, version, "harvestLoots", &loots)
}

func (c *Client) ItemProperties(ctx context.Context, version string) ([]RawItemProperty, error) {
	var properties []RawItemProperty
	return properties, c.getGamedata(ctx, version, "itemProperties", &properties)
}

func (c *Client) getGamedata(ctx context.Context, version, table string, out any) error {
	ctx, span := tracer.Start(ctx, "getGamedata")
	defer span.End()
	span.SetAttributes(
		attribute.String("version", version),
		attribute.String("table", table),
	)

	err := c.getJson(ctx, fmt.Sprintf("/gamedata/%s/%s.json", version, table), out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) getJson(ctx context.Context, path string, out any) error {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return err
	}
	if res.StatusCode() != 200 {
		return fmt.Errorf("cdn returned %s for %s", res.Status(), path)
	}
	return json.Unmarshal(res.Body(), out)
}
