package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/ranking"
	"github.com/alexanderramin/nextup/internal/repository"
)

type rankingService struct {
	items  repository.ItemRepo
	config repository.ConfigRepo
	now    func() time.Time
}

func NewRankingService(items repository.ItemRepo, config repository.ConfigRepo) RankingService {
	return &rankingService{items: items, config: config, now: time.Now}
}

func (s *rankingService) Recommend(ctx context.Context, req RecommendRequest) ([]ranking.RankedItem, error) {
	snapshot, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	factors := req.Factors
	if factors == nil {
		factors = ranking.DefaultActiveFactors()
	}

	ranked := ranking.Rank(snapshot, *cfg, factors, s.now())
	ranked = filterRanked(ranked, req)

	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}
	return ranked, nil
}

// filterRanked applies the request filters after scoring so that sub-score
// normalization is unaffected by how the caller narrows the view.
func filterRanked(ranked []ranking.RankedItem, req RecommendRequest) []ranking.RankedItem {
	types := make(map[domain.MediaType]bool, len(req.Types))
	for _, t := range req.Types {
		types[t] = true
	}
	statuses := make(map[domain.ItemStatus]bool, len(req.Statuses))
	for _, st := range req.Statuses {
		statuses[st] = true
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	out := ranked[:0]
	for _, r := range ranked {
		if len(types) > 0 && !types[r.Item.Type] {
			continue
		}
		if len(statuses) > 0 && !statuses[r.Item.Status] {
			continue
		}
		if req.Genre != "" && !domain.HasGenre(r.Item.Genres, req.Genre) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Item.Title), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}
