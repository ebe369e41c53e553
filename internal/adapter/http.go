// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

const (
	traceIDHeader  = "X-Trace-ID"
	usernameCookie = "username"
)

type httpShopClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPShopClient builds a [ShopClient] for cfg.BaseURL. A bare
// "host:port" address is treated as http. Every request carries a fresh
// X-Trace-ID and is logged at debug level.
func NewHTTPShopClient(cfg config.Adapter, logger *logger.Logger) (ShopClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(traceIDHeader) == "" {
				r.SetHeader(traceIDHeader, utils.NewTraceID())
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
				Msg("api call")
			return nil
		})

	return &httpShopClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpShopClient) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

func (c *httpShopClient) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := c.request(ctx).
		SetBody(credentials).
		Post("/users/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpShopClient) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := c.request(ctx).
		SetQueryParams(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		Get("/users/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpShopClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := c.request(ctx).
		SetResult(&users).
		Get("/users/users/")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *httpShopClient) Logout(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/users/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpShopClient) Profile(ctx context.Context, username string) (models.Profile, error) {
	var profile models.Profile

	req := c.request(ctx).SetResult(&profile)
	if username != "" {
		req.SetCookie(&http.Cookie{Name: usernameCookie, Value: username})
	}

	resp, err := req.Get("/users/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (c *httpShopClient) UpdateProfile(ctx context.Context, update models.PasswordUpdate) error {
	resp, err := c.request(ctx).
		SetQueryParams(map[string]string{
			"username":     update.Username,
			"new_password": update.NewPassword,
		}).
		Put("/users/profile")
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpShopClient) CreateProduct(ctx context.Context, product models.ProductCreate) (models.Product, error) {
	var created models.Product

	resp, err := c.request(ctx).
		SetBody(product).
		SetResult(&created).
		Post("/products/")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return created, nil
}

func (c *httpShopClient) ListProducts(ctx context.Context, page models.Page) ([]models.Product, error) {
	var products []models.Product

	resp, err := c.request(ctx).
		SetQueryParams(map[string]string{
			"skip":  strconv.FormatUint(page.Skip, 10),
			"limit": strconv.FormatUint(page.Limit, 10),
		}).
		SetResult(&products).
		Get("/products/")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *httpShopClient) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return c.productCall(ctx, http.MethodGet, id, nil)
}

func (c *httpShopClient) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return c.productCall(ctx, http.MethodPut, id, update)
}

func (c *httpShopClient) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	return c.productCall(ctx, http.MethodDelete, id, nil)
}

// productCall performs a request against /products/{product_id} that
// answers with a single product.
func (c *httpShopClient) productCall(ctx context.Context, method string, id int64, body any) (models.Product, error) {
	var product models.Product

	req := c.request(ctx).
		SetPathParam("product_id", strconv.FormatInt(id, 10)).
		SetResult(&product)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, "/products/{product_id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("%s product request: %w", strings.ToLower(method), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

func (c *httpShopClient) Health(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}
