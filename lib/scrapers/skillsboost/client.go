package skillsboost

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"skillscore-backend/lib/profileurl"
	"skillscore-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/skillsboost")

const maxRedirects = 5

type Client struct {
	base *url.URL
	http *resty.Client
}

type ClientOptions struct {
	// overrides the platform origin, used by tests. empty means
	// https://www.cloudskillsboost.google
	BaseUrl string
	// bounds the outbound fetch, defaults to 30 seconds
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = profileurl.Origin
	}
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/skillsboost/http")

	return &Client{
		base: base,
		http: client,
	}, nil
}

// FetchRaw retrieves the raw profile markup. A redirect that lands
// off /public_profiles/ while staying on the platform host is how
// the platform expresses "this profile is private", so that case is
// reported as ErrPrivateProfile without looking at the body.
func (c *Client) FetchRaw(ctx context.Context, profileUrl string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:FetchRaw")
	defer span.End()

	id, ok := profileurl.ExtractID(profileUrl)
	if !ok {
		span.SetStatus(codes.Error, "invalid profile url")
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, profileUrl)
	}
	span.SetAttributes(attribute.String("profile_id", id))

	res, err := c.http.R().
		SetContext(ctx).
		Get(profileurl.ProfilePath + id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, classifyTransportError(err)
	}

	finalUrl := res.RawResponse.Request.URL
	if finalUrl != nil &&
		finalUrl.Host == c.base.Host &&
		!strings.Contains(finalUrl.Path, profileurl.ProfilePath) {
		span.SetStatus(codes.Error, "redirected to homepage")
		return nil, fmt.Errorf("%w: redirected to %s", ErrPrivateProfile, finalUrl)
	}

	if res.StatusCode() != 200 {
		span.SetStatus(codes.Error, "unexpected status")
		return nil, StatusError{Code: res.StatusCode()}
	}
	if len(res.Body()) == 0 {
		span.SetStatus(codes.Error, "empty response")
		return nil, ErrEmptyResponse
	}

	return res.Body(), nil
}

// FetchProfile is FetchRaw followed by extraction.
func (c *Client) FetchProfile(ctx context.Context, profileUrl string) (RawProfile, error) {
	ctx, span := tracer.Start(ctx, "client:FetchProfile")
	defer span.End()

	markup, err := c.FetchRaw(ctx, profileUrl)
	if err != nil {
		return RawProfile{}, err
	}

	profile, err := Extract(ctx, markup)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return RawProfile{}, err
	}

	canonical, _ := profileurl.Normalize(profileUrl)
	profile.ProfileURL = canonical
	profile.FetchedAt = time.Now()
	return profile, nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %s", ErrNetwork, err)
}
