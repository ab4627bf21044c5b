package contact

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	appmiddleware "github.com/sudhanshu-jha/portfolio-api/internal/middleware"
)

// Collection is the Firestore collection holding contact submissions. It is
// exported because the analytics summary counts it directly.
const Collection = "contact_submissions"

// firestoreSubmission maps a Submission to the stored document structure.
// The document key carries the submission id, so the id is not duplicated
// inside the document.
type firestoreSubmission struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Company   string    `firestore:"company"`
	Message   string    `firestore:"message"`
	CreatedAt time.Time `firestore:"createdAt"`
	Source    string    `firestore:"source"`
	Status    string    `firestore:"status"`
	IPAddress string    `firestore:"ipAddress"`
	UserAgent string    `firestore:"userAgent"`
}

// FirestoreStore implements Service backed by Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create stores a new submission under a generated id with server-assigned
// timestamp, source tag and initial status.
func (s *FirestoreStore) Create(ctx context.Context, params CreateParams) (*Submission, error) {
	sub := &Submission{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Email:     params.Email,
		Company:   params.Company,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
		Source:    Source,
		Status:    StatusNew,
		IPAddress: params.IPAddress,
		UserAgent: params.UserAgent,
	}

	_, err := s.client.Collection(Collection).Doc(sub.ID).Create(ctx, toFirestore(sub))
	if err != nil {
		appmiddleware.LogError(ctx, "create contact submission failed", err)
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

// List returns stored submissions ordered by creation time descending.
func (s *FirestoreStore) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	iter := s.client.Collection(Collection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var subs []Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			appmiddleware.LogError(ctx, "list contact submissions failed", err)
			return nil, fmt.Errorf("list submissions: %w", err)
		}

		var fs firestoreSubmission
		if err := doc.DataTo(&fs); err != nil {
			appmiddleware.LogError(ctx, "decode contact submission failed", err)
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		subs = append(subs, *fromFirestore(doc.Ref.ID, &fs))
	}
	return subs, nil
}

// UpdateStatus sets the status of one submission. The transaction read
// distinguishes a missing document from a storage failure.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	docRef := s.client.Collection(Collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			if grpcstatus.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "status", Value: string(status)},
		})
	})
	if err != nil {
		if err == ErrNotFound {
			return ErrNotFound
		}
		appmiddleware.LogError(ctx, "update submission status failed", err)
		return fmt.Errorf("update submission status: %w", err)
	}
	return nil
}

func toFirestore(sub *Submission) *firestoreSubmission {
	return &firestoreSubmission{
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Message:   sub.Message,
		CreatedAt: sub.CreatedAt,
		Source:    sub.Source,
		Status:    string(sub.Status),
		IPAddress: sub.IPAddress,
		UserAgent: sub.UserAgent,
	}
}

func fromFirestore(id string, fs *firestoreSubmission) *Submission {
	return &Submission{
		ID:        id,
		Name:      fs.Name,
		Email:     fs.Email,
		Company:   fs.Company,
		Message:   fs.Message,
		CreatedAt: fs.CreatedAt,
		Source:    fs.Source,
		Status:    Status(fs.Status),
		IPAddress: fs.IPAddress,
		UserAgent: fs.UserAgent,
	}
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
