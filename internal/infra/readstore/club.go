package readstore

import (
	"context"
	"math"

	"field-booking/internal/infra"
	"field-booking/internal/infra/sqlc"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=club.go -destination=../../mock/readstore/club_mock.go -package=readstoremock
type ClubReadQueries interface {
	GetClub(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.GetClubRow, error)
	ListClubFields(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.ListClubFieldsRow, error)
	SearchClubs(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchClubsParams) ([]sqlc.ClubRow, error)
	CountClubs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClubFilterParams) (int64, error)
	ListTopRatedClubs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ClubRow, error)
}

type ClubReadStore struct {
	queries ClubReadQueries
	db      sqlc.DBTX
}

func NewClubReadStore(queries ClubReadQueries, db sqlc.DBTX) *ClubReadStore {
	return &ClubReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClubReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.ClubDetailView, error) {
	row, err := r.queries.GetClub(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get club", err)
	}
	fields, err := r.queries.ListClubFields(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list club fields", err)
	}
	out := &queries.ClubDetailView{
		ClubView:        *toClubView(row.ClubRow),
		RegisteredTeams: row.RegisteredTeams,
		Fields:          make([]*queries.ClubFieldView, 0, len(fields)),
	}
	for _, f := range fields {
		price, err := pgconv.DecimalFromNumeric(f.PricePerHour)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode field price", err, infra.KindDBFailure)
		}
		out.Fields = append(out.Fields, &queries.ClubFieldView{
			ID:            f.ID,
			Name:          f.Name,
			Location:      f.Location,
			Governorate:   f.Governorate,
			PricePerHour:  price,
			BookingsCount: f.BookingsCount,
			ReviewsCount:  f.ReviewsCount,
			AverageRating: roundRating(f.AverageRating),
		})
	}
	return out, nil
}

func (r *ClubReadStore) Search(ctx context.Context, filter queries.ClubFilter, limit, offset int32) ([]*queries.ClubView, error) {
	rows, err := r.queries.SearchClubs(ctx, r.db, sqlc.SearchClubsParams{
		ClubFilterParams: clubFilterParams(filter),
		SortBy:           string(filter.SortBy),
		Desc:             filter.Desc,
		Limit:            limit,
		Offset:           offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search clubs", err)
	}
	return toClubViews(rows), nil
}

func (r *ClubReadStore) Count(ctx context.Context, filter queries.ClubFilter) (int64, error) {
	n, err := r.queries.CountClubs(ctx, r.db, clubFilterParams(filter))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count clubs", err)
	}
	return n, nil
}

func (r *ClubReadStore) TopRated(ctx context.Context, limit int32) ([]*queries.ClubView, error) {
	rows, err := r.queries.ListTopRatedClubs(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top rated clubs", err)
	}
	return toClubViews(rows), nil
}

func clubFilterParams(f queries.ClubFilter) sqlc.ClubFilterParams {
	return sqlc.ClubFilterParams{
		Name:        optionalText(f.Name),
		Governorate: optionalText(f.Governorate),
		MinRating:   pgconv.Float64PtrToPgtype(f.MinRating),
	}
}

func toClubViews(rows []sqlc.ClubRow) []*queries.ClubView {
	out := make([]*queries.ClubView, len(rows))
	for i, row := range rows {
		out[i] = toClubView(row)
	}
	return out
}

func toClubView(row sqlc.ClubRow) *queries.ClubView {
	return &queries.ClubView{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Phone:         row.Phone,
		TotalFields:   row.TotalFields,
		TotalBookings: row.TotalBookings,
		TotalReviews:  row.TotalReviews,
		AverageRating: roundRating(row.AverageRating),
	}
}

// roundRating keeps two decimals, the precision ratings are shown with.
func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}
