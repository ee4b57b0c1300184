package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/ASTRELLECT/SynVotra/pkg/logger"
)

// APIPrefix is the versioned base of every portal route.
const APIPrefix = "/astrellect/v1"

var ErrUnauthorized = errors.New("backend: session is no longer authorized")

// TokenSource supplies the current bearer token; an empty string means
// no credential and the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	http           *resty.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
}

func NewClient(addr string, ts TokenSource) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("backend: can't create cookie jar, %w", err)
	}
	c := resty.New().SetBaseURL(addr + APIPrefix).SetCookieJar(jar)

	return &Client{
		http:    c,
		baseURL: addr,
		tokens:  ts,
	}, nil
}

// SetOnUnauthorized installs the hook fired when any authenticated call
// comes back 401. At most one invocation per response.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// SyncCookie mirrors the bearer token into the access_token cookie for
// endpoints that use cookie transport. An empty token drops the cookie.
func (c *Client) SyncCookie(token string) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return
	}
	cookie := &http.Cookie{
		Name:  "access_token",
		Value: token,
		Path:  "/",
	}
	if token == `` {
		cookie.MaxAge = -1
	}
	c.http.GetClient().Jar.SetCookies(u, []*http.Cookie{cookie})
}

func (c *Client) req(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token := c.tokens.Token(); token != `` {
		r.SetAuthToken(token)
	}
	return r
}

// checked normalizes a resty response: transport errors pass through,
// 401 fires the invalidation hook, other error statuses surface the
// backend's own message.
func (c *Client) checked(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil {
		logger.Log(ctx).Errorf("backend: request failed, %v", err)
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// apiError surfaces the backend's detail/message field verbatim.
func apiError(resp *resty.Response) error {
	body := struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}{}
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil {
		if body.Detail != `` {
			return errors.New(body.Detail)
		}
		if body.Message != `` {
			return errors.New(body.Message)
		}
	}
	return fmt.Errorf("backend: request failed with status %d", resp.StatusCode())
}
