package portfolio

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
)

const (
	portfolioCollection = "portfolio_data"

	// portfolioDocID is the well-known key of the singleton document.
	// Writing through a fixed key keeps concurrent seeding atomic: two
	// racing upserts both land on the same document, last write wins.
	portfolioDocID = "portfolio"
)

// firestorePortfolio maps Portfolio to the Firestore document structure.
// Field names follow the public wire format so documents written by earlier
// versions of the site remain readable.
type firestorePortfolio struct {
	ID             string                `firestore:"id"`
	Personal       firestorePersonal     `firestore:"personal"`
	About          firestoreAbout        `firestore:"about"`
	Skills         firestoreSkills       `firestore:"skills"`
	Experience     []firestoreExperience `firestore:"experience"`
	Projects       []firestoreProject    `firestore:"projects"`
	Certifications []string              `firestore:"certifications"`
	Achievements   []firestoreAward      `firestore:"achievements"`
	LastUpdated    time.Time             `firestore:"lastUpdated"`
}

type firestorePersonal struct {
	Name            string `firestore:"name"`
	Title           string `firestore:"title"`
	Tagline         string `firestore:"tagline"`
	Location        string `firestore:"location"`
	Email           string `firestore:"email"`
	Phone           string `firestore:"phone"`
	LinkedIn        string `firestore:"linkedin"`
	ProfileImage    string `firestore:"profileImage"`
	YearsExperience string `firestore:"yearsExperience"`
	Domain          string `firestore:"domain"`
}

type firestoreAbout struct {
	Summary    string   `firestore:"summary"`
	Highlights []string `firestore:"highlights"`
}

type firestoreSkills struct {
	ProductManagement []string `firestore:"productManagement"`
	ProgramDelivery   []string `firestore:"programDelivery"`
	DataAndAI         []string `firestore:"dataAndAI"`
	Leadership        []string `firestore:"leadership"`
	Technical         []string `firestore:"technical"`
}

type firestoreExperience struct {
	ID         int      `firestore:"id"`
	Title      string   `firestore:"title"`
	Company    string   `firestore:"company"`
	Location   string   `firestore:"location"`
	Duration   string   `firestore:"duration"`
	Type       string   `firestore:"type"`
	Highlights []string `firestore:"highlights"`
}

type firestoreProject struct {
	ID           int            `firestore:"id"`
	Title        string         `firestore:"title"`
	Category     string         `firestore:"category"`
	Description  string         `firestore:"description"`
	Achievements []string       `firestore:"achievements"`
	Technologies []string       `firestore:"technologies"`
	Impact       string         `firestore:"impact"`
	Metrics      map[string]any `firestore:"metrics"`
}

type firestoreAward struct {
	Title       string `firestore:"title"`
	Description string `firestore:"description"`
}

// FirestoreStore implements Service backed by Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get retrieves the singleton portfolio document. The document key is a
// store-internal detail and never appears in the returned entity.
func (s *FirestoreStore) Get(ctx context.Context) (*Portfolio, error) {
	doc, err := s.client.Collection(portfolioCollection).Doc(portfolioDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		appmiddleware.LogError(ctx, "fetch portfolio failed", err)
		return nil, fmt.Errorf("fetch portfolio: %w", err)
	}

	var fp firestorePortfolio
	if err := doc.DataTo(&fp); err != nil {
		appmiddleware.LogError(ctx, "decode portfolio failed", err)
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	return fromFirestore(&fp), nil
}

// Upsert replaces the singleton portfolio document. Set on the fixed key is
// a single atomic write, so there is no check-then-insert race.
func (s *FirestoreStore) Upsert(ctx context.Context, p *Portfolio) error {
	_, err := s.client.Collection(portfolioCollection).Doc(portfolioDocID).Set(ctx, toFirestore(p))
	if err != nil {
		appmiddleware.LogError(ctx, "upsert portfolio failed", err)
		return fmt.Errorf("upsert portfolio: %w", err)
	}
	return nil
}

func toFirestore(p *Portfolio) *firestorePortfolio {
	fp := &firestorePortfolio{
		ID: p.ID,
		Personal: firestorePersonal{
			Name:            p.Personal.Name,
			Title:           p.Personal.Title,
			Tagline:         p.Personal.Tagline,
			Location:        p.Personal.Location,
			Email:           p.Personal.Email,
			Phone:           p.Personal.Phone,
			LinkedIn:        p.Personal.LinkedIn,
			ProfileImage:    p.Personal.ProfileImage,
			YearsExperience: p.Personal.YearsExperience,
			Domain:          p.Personal.Domain,
		},
		About: firestoreAbout{
			Summary:    p.About.Summary,
			Highlights: p.About.Highlights,
		},
		Skills: firestoreSkills{
			ProductManagement: p.Skills.ProductManagement,
			ProgramDelivery:   p.Skills.ProgramDelivery,
			DataAndAI:         p.Skills.DataAndAI,
			Leadership:        p.Skills.Leadership,
			Technical:         p.Skills.Technical,
		},
		Certifications: p.Certifications,
		LastUpdated:    p.LastUpdated,
	}
	for _, e := range p.Experience {
		fp.Experience = append(fp.Experience, firestoreExperience(e))
	}
	for _, pr := range p.Projects {
		fp.Projects = append(fp.Projects, firestoreProject(pr))
	}
	for _, a := range p.Achievements {
		fp.Achievements = append(fp.Achievements, firestoreAward(a))
	}
	return fp
}

func fromFirestore(fp *firestorePortfolio) *Portfolio {
	p := &Portfolio{
		ID: fp.ID,
		Personal: PersonalInfo{
			Name:            fp.Personal.Name,
			Title:           fp.Personal.Title,
			Tagline:         fp.Personal.Tagline,
			Location:        fp.Personal.Location,
			Email:           fp.Personal.Email,
			Phone:           fp.Personal.Phone,
			LinkedIn:        fp.Personal.LinkedIn,
			ProfileImage:    fp.Personal.ProfileImage,
			YearsExperience: fp.Personal.YearsExperience,
			Domain:          fp.Personal.Domain,
		},
		About: AboutInfo{
			Summary:    fp.About.Summary,
			Highlights: fp.About.Highlights,
		},
		Skills: SkillsInfo{
			ProductManagement: fp.Skills.ProductManagement,
			ProgramDelivery:   fp.Skills.ProgramDelivery,
			DataAndAI:         fp.Skills.DataAndAI,
			Leadership:        fp.Skills.Leadership,
			Technical:         fp.Skills.Technical,
		},
		Certifications: fp.Certifications,
		LastUpdated:    fp.LastUpdated,
	}
	for _, e := range fp.Experience {
		p.Experience = append(p.Experience, ExperienceItem(e))
	}
	for _, pr := range fp.Projects {
		p.Projects = append(p.Projects, ProjectItem(pr))
	}
	for _, a := range fp.Achievements {
		p.Achievements = append(p.Achievements, Achievement(a))
	}
	return p
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
