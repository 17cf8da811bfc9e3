// Package zenith ingests equipment lists from the third-party build
// planner. The page's DOM contract is unstable, extraction is a set
// of defensive heuristics and downstream consumers must tolerate
// partial results.
package zenith

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/mmangon/wakdrop-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/zenith")

type Client struct {
	baseUrl *url.URL
	http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "services/zenith/http")

	return &Client{
		baseUrl: baseUrl,
		http:    client,
	}, nil
}

// ExtractBuildID pulls the build identifier out of a planner URL,
// e.g. ".../builder/v3dhe" -> "v3dhe".
func ExtractBuildID(buildUrl string) (string, error) {
	parsed, err := url.Parse(buildUrl)
	if err != nil {
		return "", err
	}
	path := strings.Trim(parsed.Path, "/")
	segments := strings.Split(path, "/")
	id := segments[len(segments)-1]
	if id == "" {
		return "", fmt.Errorf("no build id in url: %s", buildUrl)
	}
	return id, nil
}

// FetchEquipment downloads a build page and extracts its equipment
// list.
func (c *Client) FetchEquipment(ctx context.Context, buildUrl string) ([]EquipmentItem, error) {
	ctx, span := tracer.Start(ctx, "FetchEquipment")
	defer span.End()
	span.SetAttributes(attribute.String("url", buildUrl))

	res, err := c.http.R().SetContext(ctx).Get(buildUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("unexpected status fetching build page: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	items := ExtractEquipment(doc)
	span.SetAttributes(attribute.Int("items", len(items)))
	return items, nil
}
