package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iitmspaces/assets_backend/appctx"
	"github.com/iitmspaces/assets_backend/cache"
	"github.com/iitmspaces/assets_backend/config"
	"github.com/iitmspaces/assets_backend/nocobase"
	"github.com/iitmspaces/assets_backend/stats"
)

// recordFetcher is what handlers need from the NocoBase client. Narrowed to
// an interface so handler tests can count upstream calls.
type recordFetcher interface {
	FetchAllRecords(ctx context.Context, collection string) ([]nocobase.Record, error)
	FetchList(ctx context.Context, path string) ([]nocobase.Record, error)
}

type apiServer struct {
	fetcher recordFetcher
	cache   *cache.Service
	logger  *logrus.Logger
}

func newAPIServer(fetcher recordFetcher, cacheService *cache.Service, logger *logrus.Logger) *apiServer {
	return &apiServer{
		fetcher: fetcher,
		cache:   cacheService,
		logger:  logger,
	}
}

// serveCached answers from the cache when possible; otherwise computes the
// result, stores the marshalled JSON, and serves those same bytes, so a hit
// and the miss that filled it are byte-identical.
func (s *apiServer) serveCached(c *gin.Context, cacheKey string, compute func(ctx context.Context) (any, error)) {
	ctx := c.Request.Context()

	raw, ok, err := s.cache.GetRaw(ctx, cacheKey)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"key": cacheKey,
		}).Warn("cache read failed; recomputing: " + err.Error())
	}
	if ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
		return
	}

	// Best-effort: hold a lock per cache key so concurrent misses don't all
	// hit the upstream. If the lock cannot be obtained, continue anyway.
	if locker := config.GetRedisLock(); locker != nil {
		lock, lockErr := locker.Obtain(ctx, "lock:"+cacheKey, 30*time.Second, nil)
		if lockErr == nil {
			defer func() {
				if releaseErr := lock.Release(ctx); releaseErr != nil {
					s.logger.WithFields(logrus.Fields{
						"key": cacheKey,
					}).Warn("failed to release cache lock: " + releaseErr.Error())
				}
			}()
			// Another request may have filled the cache while we waited.
			if raw, ok, _ := s.cache.GetRaw(ctx, cacheKey); ok {
				c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
				return
			}
		}
	}

	result, err := compute(ctx)
	if err != nil {
		cid, _ := appctx.GetCorrelationId(ctx)
		config.LogError(s.logger, "handlers.go", "serveCached", cacheKey, cid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	raw, err = json.Marshal(result)
	if err != nil {
		config.LogError(s.logger, "handlers.go", "serveCached", cacheKey, nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := s.cache.SetRaw(ctx, cacheKey, raw); err != nil {
		s.logger.WithFields(logrus.Fields{
			"key": cacheKey,
		}).Warn("cache write failed: " + err.Error())
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// GET /api/stats/summary
func (s *apiServer) statsSummaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.serveCached(c, "stats:summary", func(ctx context.Context) (any, error) {
			var assets, srbDetails, buildings, instances []nocobase.Record

			// The four collections are independent; fetch them concurrently.
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				assets, err = s.fetcher.FetchAllRecords(gctx, "Asset")
				return err
			})
			g.Go(func() error {
				var err error
				srbDetails, err = s.fetcher.FetchAllRecords(gctx, "SRB_Details")
				return err
			})
			g.Go(func() error {
				var err error
				buildings, err = s.fetcher.FetchList(gctx, "/api/Buildings:list")
				return err
			})
			g.Go(func() error {
				var err error
				instances, err = s.fetcher.FetchAllRecords(gctx, "Instance")
				return err
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}

			return stats.Summary(assets, srbDetails, buildings, instances), nil
		})
	}
}

// GET /api/stats/srb-amount-distribution
func (s *apiServer) srbAmountDistributionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.serveCached(c, "stats:srb-amount", func(ctx context.Context) (any, error) {
			srbDetails, err := s.fetcher.FetchAllRecords(ctx, "SRB_Details")
			if err != nil {
				return nil, err
			}
			return stats.SRBAmountDistribution(srbDetails), nil
		})
	}
}

// GET /api/stats/asset-by-category
func (s *apiServer) assetByCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.serveCached(c, "stats:asset-category", func(ctx context.Context) (any, error) {
			srbDetails, err := s.fetcher.FetchAllRecords(ctx, "SRB_Details")
			if err != nil {
				return nil, err
			}
			return stats.AssetByCategory(srbDetails), nil
		})
	}
}

// GET /api/stats/export
// Streams the category report as an xlsx attachment. Not cached: the
// workbook is rebuilt per download from a fresh record set.
func (s *apiServer) exportCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		srbDetails, err := s.fetcher.FetchAllRecords(c.Request.Context(), "SRB_Details")
		if err != nil {
			config.LogError(s.logger, "handlers.go", "exportCategoryHandler", "FetchAllRecords", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		report := stats.AssetByCategory(srbDetails)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=asset-by-category.xlsx")
		if err := stats.ExportCategoryReport(report, c.Writer); err != nil {
			config.LogError(s.logger, "handlers.go", "exportCategoryHandler", "ExportCategoryReport", nil, err)
		}
	}
}

// GET /api/assets?pageSize=&building=&status=
func (s *apiServer) assetsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
		if err != nil || pageSize <= 0 {
			pageSize = 50
		}
		building := c.Query("building")
		status := c.Query("status")

		cacheKey := fmt.Sprintf("assets:list:%d:%s:%s", pageSize, orAll(building), orAll(status))
		s.serveCached(c, cacheKey, func(ctx context.Context) (any, error) {
			assets, err := s.fetcher.FetchList(ctx, fmt.Sprintf("/api/Asset:list?pageSize=%d", pageSize))
			if err != nil {
				return nil, err
			}
			return filterAssets(assets, building, status), nil
		})
	}
}

func orAll(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

func filterAssets(assets []nocobase.Record, building, status string) []nocobase.Record {
	if building == "" && status == "" {
		return assets
	}
	filtered := make([]nocobase.Record, 0, len(assets))
	for _, a := range assets {
		if building != "" && !stats.FieldEquals(a["Building_Id"], building) {
			continue
		}
		if status != "" {
			s, ok := a["is_active"].(string)
			if !ok || s != status {
				continue
			}
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// GET /api/buildings
func (s *apiServer) buildingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.serveCached(c, "buildings:list", func(ctx context.Context) (any, error) {
			return s.fetcher.FetchList(ctx, "/api/Buildings:list")
		})
	}
}

// GET /admin/count-active-assets?building=
// Not cached: this is an ad-hoc admin probe and should reflect live data.
func (s *apiServer) countActiveAssetsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		buildingName := c.DefaultQuery("building", "Computer Center")
		ctx := c.Request.Context()

		buildings, err := s.fetcher.FetchAllRecords(ctx, "Buildings")
		if err != nil {
			config.LogError(s.logger, "handlers.go", "countActiveAssetsHandler", "fetch Buildings", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		building, found := stats.FindBuilding(buildings, buildingName)
		if !found {
			result := stats.BuildingNotFound(buildingName)
			s.logger.WithFields(logrus.Fields{
				"building": buildingName,
			}).Warn(result.Message)
			c.JSON(http.StatusNotFound, result)
			return
		}

		assets, err := s.fetcher.FetchAllRecords(ctx, "Asset")
		if err != nil {
			config.LogError(s.logger, "handlers.go", "countActiveAssetsHandler", "fetch Asset", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		result := stats.CountActiveAssets(building, assets, buildingName)
		s.logger.WithFields(logrus.Fields{
			"building": buildingName,
			"count":    result.Count,
		}).Info(result.Message)
		c.JSON(http.StatusOK, result)
	}
}

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
