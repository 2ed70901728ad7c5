package handlers

import (
	"bytes"
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/brandslanding/internal/brandslanding"
	"github.com/example/brandslanding/internal/i18n"
	"github.com/example/brandslanding/internal/store"
	"github.com/example/brandslanding/internal/views"
)

// IconInliner fetches icon markup keyed by URL.
type IconInliner interface {
	Inline(ctx context.Context, urls []string) map[string]string
}

// LandingHandler serves brand landing pages.
type LandingHandler struct {
	source      store.Source
	icons       IconInliner
	renderer    *views.Renderer
	bundle      *i18n.Bundle
	cdnBaseURL  string
	enabled     bool
	breakpoints brandslanding.Breakpoints
	logger      *zap.Logger
}

// LandingOptions bundles LandingHandler dependencies.
type LandingOptions struct {
	Source     store.Source
	Icons      IconInliner
	Renderer   *views.Renderer
	Bundle     *i18n.Bundle
	CDNBaseURL string
	// Enabled is the process-wide landing switch.
	Enabled bool
}

// NewLandingHandler constructs LandingHandler.
func NewLandingHandler(opts LandingOptions) *LandingHandler {
	return &LandingHandler{
		source:      opts.Source,
		icons:       opts.Icons,
		renderer:    opts.Renderer,
		bundle:      opts.Bundle,
		cdnBaseURL:  opts.CDNBaseURL,
		enabled:     opts.Enabled,
		breakpoints: brandslanding.DefaultBreakpoints,
		logger:      zap.L().Named("landing"),
	}
}

// initialData is what a first render needs: the settled store state and
// the localization namespaces the page uses.
type initialData struct {
	InitialState       store.State `json:"initialState"`
	NamespacesRequired []string    `json:"namespacesRequired"`
}

// prefetchLanding runs the load for brandKey to completion before anything
// is rendered and marks the response 404 when the load was rejected.
func (h *LandingHandler) prefetchLanding(c *fiber.Ctx, st *store.Store, brandKey string) initialData {
	if err := st.FetchBrandLandingData(c.UserContext(), brandKey); err != nil {
		h.logger.Info("landing load failed", zap.String("brand", brandKey), zap.Error(err))
	}

	state := st.State()
	if store.GetBrandsLandingPageStatus(state) == brandslanding.StatusRejected {
		c.Status(fiber.StatusNotFound)
	}

	return initialData{
		InitialState:       state,
		NamespacesRequired: []string{brandslanding.Namespace},
	}
}

// Page renders GET /brands/ct/:brandKey.
func (h *LandingHandler) Page(c *fiber.Ctx) error {
	brandKey := brandKeyParam(c)
	data := h.prefetchLanding(c, store.New(h.source, h.enabled), brandKey)
	state := data.InitialState

	lang := h.bundle.Match(c.Get(fiber.HeaderAcceptLanguage))
	translate := h.bundle.Translator(lang, brandslanding.Namespace)

	page := brandslanding.BuildPage(brandslanding.PageInput{
		BrandKey:    brandKey,
		Status:      store.GetBrandsLandingPageStatus(state),
		Brand:       store.GetBrandData(state),
		Enabled:     store.GetBrandsLandingEnabled(state),
		Categories:  store.GetLevel2CategoryTrees(state),
		Config:      store.GetPageConfig(state),
		CDNBaseURL:  h.cdnBaseURL,
		Breakpoints: h.breakpoints,
		T:           translate,
	})

	if page.View == brandslanding.ViewNotFound {
		c.Status(fiber.StatusNotFound)
	}

	if page.View == brandslanding.ViewContent && h.icons != nil && len(page.Sections) > 0 {
		page.ApplyIcons(h.icons.Inline(c.UserContext(), page.IconURLs()))
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, views.PageData{Lang: lang, Page: page, Translate: translate}); err != nil {
		h.logger.Error("render landing page", zap.String("brand", brandKey), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// InitialState serves GET /api/brands-landing/:brandKey, the same prefetch
// as Page for client side navigation.
func (h *LandingHandler) InitialState(c *fiber.Ctx) error {
	data := h.prefetchLanding(c, store.New(h.source, h.enabled), brandKeyParam(c))
	return c.JSON(data)
}

func brandKeyParam(c *fiber.Ctx) string {
	raw := c.Params("brandKey")
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}
