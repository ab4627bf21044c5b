package portfolio

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sudhanshu-jha/portfolio-api/internal/common"
	portfoliosvc "github.com/sudhanshu-jha/portfolio-api/internal/service/portfolio"
)

// Register registers portfolio endpoints.
func Register(api huma.API, svc portfoliosvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio",
		Method:      http.MethodGet,
		Path:        "/portfolio",
		Summary:     "Get complete portfolio data",
		Description: "Retrieves the published portfolio document.",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		p, err := svc.Get(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &GetOutput{Body: toHTTPPortfolio(p)}, nil
	})
}

func mapServiceError(err error) error {
	if errors.Is(err, portfoliosvc.ErrNotFound) {
		return huma.Error404NotFound("portfolio data not found")
	}
	return huma.Error500InternalServerError("internal server error")
}

func toHTTPPortfolio(p *portfoliosvc.Portfolio) Portfolio {
	out := Portfolio{
		ID:             p.ID,
		Personal:       PersonalInfo(p.Personal),
		About:          AboutInfo(p.About),
		Skills:         SkillsInfo(p.Skills),
		Certifications: p.Certifications,
		LastUpdated:    common.NewTime(p.LastUpdated),
	}
	for _, e := range p.Experience {
		out.Experience = append(out.Experience, ExperienceItem(e))
	}
	for _, pr := range p.Projects {
		out.Projects = append(out.Projects, ProjectItem(pr))
	}
	for _, a := range p.Achievements {
		out.Achievements = append(out.Achievements, Achievement(a))
	}
	return out
}
