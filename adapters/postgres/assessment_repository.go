package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"windfit/domain/core"
	"windfit/domain/wind"
	"windfit/ports"

	"github.com/jmoiron/sqlx"
)

// Schema creates the assessments table. Applied at startup; idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS wind_assessments (
	id                  TEXT PRIMARY KEY,
	label               TEXT NOT NULL,
	n                   INTEGER NOT NULL,
	sample_mean         DOUBLE PRECISION NOT NULL,
	sample_variance     DOUBLE PRECISION NOT NULL,
	sample_std          DOUBLE PRECISION NOT NULL,
	shape_k             DOUBLE PRECISION NOT NULL,
	scale_c             DOUBLE PRECISION NOT NULL,
	dist_mean           DOUBLE PRECISION NOT NULL,
	dist_variance       DOUBLE PRECISION NOT NULL,
	dist_std            DOUBLE PRECISION NOT NULL,
	dist_mode           DOUBLE PRECISION NOT NULL,
	dist_median         DOUBLE PRECISION NOT NULL,
	v_most_probable     DOUBLE PRECISION NOT NULL,
	v_max_energy        DOUBLE PRECISION NOT NULL,
	v_median            DOUBLE PRECISION NOT NULL,
	v_theoretical_mean  DOUBLE PRECISION NOT NULL,
	ks_statistic        DOUBLE PRECISION NOT NULL,
	ks_p_value          DOUBLE PRECISION NOT NULL,
	anderson_darling    DOUBLE PRECISION NOT NULL,
	r_squared           DOUBLE PRECISION NOT NULL,
	rmse                DOUBLE PRECISION NOT NULL,
	mae                 DOUBLE PRECISION NOT NULL,
	coherence_delta     DOUBLE PRECISION NOT NULL,
	poor_fit            BOOLEAN NOT NULL,
	power_most_probable DOUBLE PRECISION NOT NULL,
	power_max_energy    DOUBLE PRECISION NOT NULL,
	mean_power_density  DOUBLE PRECISION NOT NULL,
	capacity_factor     DOUBLE PRECISION NOT NULL,
	equivalent_hours    DOUBLE PRECISION NOT NULL,
	resource_class      TEXT NOT NULL,
	strategy            TEXT NOT NULL,
	low_confidence      BOOLEAN NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_wind_assessments_label ON wind_assessments (label, created_at DESC);
`

// assessmentRow is the flat database projection of a wind.Assessment
type assessmentRow struct {
	ID                string    `db:"id"`
	Label             string    `db:"label"`
	N                 int       `db:"n"`
	SampleMean        float64   `db:"sample_mean"`
	SampleVariance    float64   `db:"sample_variance"`
	SampleStd         float64   `db:"sample_std"`
	ShapeK            float64   `db:"shape_k"`
	ScaleC            float64   `db:"scale_c"`
	DistMean          float64   `db:"dist_mean"`
	DistVariance      float64   `db:"dist_variance"`
	DistStd           float64   `db:"dist_std"`
	DistMode          float64   `db:"dist_mode"`
	DistMedian        float64   `db:"dist_median"`
	VMostProbable     float64   `db:"v_most_probable"`
	VMaxEnergy        float64   `db:"v_max_energy"`
	VMedian           float64   `db:"v_median"`
	VTheoreticalMean  float64   `db:"v_theoretical_mean"`
	KSStatistic       float64   `db:"ks_statistic"`
	KSPValue          float64   `db:"ks_p_value"`
	AndersonDarling   float64   `db:"anderson_darling"`
	RSquared          float64   `db:"r_squared"`
	RMSE              float64   `db:"rmse"`
	MAE               float64   `db:"mae"`
	CoherenceDelta    float64   `db:"coherence_delta"`
	PoorFit           bool      `db:"poor_fit"`
	PowerMostProbable float64   `db:"power_most_probable"`
	PowerMaxEnergy    float64   `db:"power_max_energy"`
	MeanPowerDensity  float64   `db:"mean_power_density"`
	CapacityFactor    float64   `db:"capacity_factor"`
	EquivalentHours   float64   `db:"equivalent_hours"`
	ResourceClass     string    `db:"resource_class"`
	Strategy          string    `db:"strategy"`
	LowConfidence     bool      `db:"low_confidence"`
	CreatedAt         time.Time `db:"created_at"`
}

// AssessmentRepositoryImpl implements AssessmentRepository for PostgreSQL
type AssessmentRepositoryImpl struct {
	db *sqlx.DB
}

// NewAssessmentRepository creates a new PostgreSQL assessment repository
func NewAssessmentRepository(db *sqlx.DB) ports.AssessmentRepository {
	return &AssessmentRepositoryImpl{db: db}
}

// EnsureSchema applies the table definition
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// Save inserts a completed assessment
func (r *AssessmentRepositoryImpl) Save(ctx context.Context, a *wind.Assessment) error {
	row := toRow(a)
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO wind_assessments (
			id, label, n, sample_mean, sample_variance, sample_std,
			shape_k, scale_c,
			dist_mean, dist_variance, dist_std, dist_mode, dist_median,
			v_most_probable, v_max_energy, v_median, v_theoretical_mean,
			ks_statistic, ks_p_value, anderson_darling, r_squared, rmse, mae,
			coherence_delta, poor_fit,
			power_most_probable, power_max_energy, mean_power_density,
			capacity_factor, equivalent_hours, resource_class,
			strategy, low_confidence, created_at
		) VALUES (
			:id, :label, :n, :sample_mean, :sample_variance, :sample_std,
			:shape_k, :scale_c,
			:dist_mean, :dist_variance, :dist_std, :dist_mode, :dist_median,
			:v_most_probable, :v_max_energy, :v_median, :v_theoretical_mean,
			:ks_statistic, :ks_p_value, :anderson_darling, :r_squared, :rmse, :mae,
			:coherence_delta, :poor_fit,
			:power_most_probable, :power_max_energy, :mean_power_density,
			:capacity_factor, :equivalent_hours, :resource_class,
			:strategy, :low_confidence, :created_at
		)
	`, row)
	return err
}

// GetByID retrieves a single assessment
func (r *AssessmentRepositoryImpl) GetByID(ctx context.Context, id core.ID) (*wind.Assessment, error) {
	var row assessmentRow
	err := r.db.GetContext(ctx, &row, `
		SELECT * FROM wind_assessments WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("assessment", id.String())
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&row), nil
}

// ListByLabel retrieves the most recent assessments for one region label
func (r *AssessmentRepositoryImpl) ListByLabel(ctx context.Context, label string, limit int) ([]*wind.Assessment, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []assessmentRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM wind_assessments
		WHERE label = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, label, limit)
	if err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

// List retrieves the most recent assessments across all labels
func (r *AssessmentRepositoryImpl) List(ctx context.Context, limit int) ([]*wind.Assessment, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []assessmentRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM wind_assessments
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

func toRow(a *wind.Assessment) *assessmentRow {
	return &assessmentRow{
		ID:                a.ID.String(),
		Label:             a.Label,
		N:                 a.N,
		SampleMean:        a.Stats.Mean,
		SampleVariance:    a.Stats.Variance,
		SampleStd:         a.Stats.StdDev,
		ShapeK:            a.Parameters.K,
		ScaleC:            a.Parameters.C,
		DistMean:          a.Summary.Mean,
		DistVariance:      a.Summary.Variance,
		DistStd:           a.Summary.StdDev,
		DistMode:          a.Summary.Mode,
		DistMedian:        a.Summary.Median,
		VMostProbable:     a.Speeds.MostProbable,
		VMaxEnergy:        a.Speeds.MaxEnergy,
		VMedian:           a.Speeds.Median,
		VTheoreticalMean:  a.Speeds.TheoreticalMean,
		KSStatistic:       a.Fit.KolmogorovSmirnov,
		KSPValue:          a.Fit.KSPValue,
		AndersonDarling:   a.Fit.AndersonDarling,
		RSquared:          a.Fit.RSquared,
		RMSE:              a.Fit.RMSE,
		MAE:               a.Fit.MAE,
		CoherenceDelta:    a.Fit.CoherenceDelta,
		PoorFit:           a.Fit.PoorFit,
		PowerMostProbable: a.Energy.PowerAtMostProbable,
		PowerMaxEnergy:    a.Energy.PowerAtMaxEnergy,
		MeanPowerDensity:  a.Energy.MeanPowerDensity,
		CapacityFactor:    a.Energy.CapacityFactor,
		EquivalentHours:   a.Energy.EquivalentHours,
		ResourceClass:     a.Energy.ResourceClass,
		Strategy:          a.Strategy,
		LowConfidence:     a.LowConfidence,
		CreatedAt:         a.CreatedAt.Time(),
	}
}

func toDomain(row *assessmentRow) *wind.Assessment {
	return &wind.Assessment{
		ID:    core.ID(row.ID),
		Label: row.Label,
		N:     row.N,
		Stats: wind.SampleStats{
			N:             row.N,
			Mean:          row.SampleMean,
			Variance:      row.SampleVariance,
			StdDev:        row.SampleStd,
			LowConfidence: row.LowConfidence,
		},
		Parameters: wind.Parameters{K: row.ShapeK, C: row.ScaleC},
		Summary: wind.DistributionSummary{
			Mean:     row.DistMean,
			Variance: row.DistVariance,
			StdDev:   row.DistStd,
			Mode:     row.DistMode,
			Median:   row.DistMedian,
		},
		Speeds: wind.CharacteristicSpeeds{
			MostProbable:    row.VMostProbable,
			MaxEnergy:       row.VMaxEnergy,
			Median:          row.VMedian,
			TheoreticalMean: row.VTheoreticalMean,
		},
		Fit: wind.ValidationReport{
			KolmogorovSmirnov: row.KSStatistic,
			KSPValue:          row.KSPValue,
			AndersonDarling:   row.AndersonDarling,
			RSquared:          row.RSquared,
			RMSE:              row.RMSE,
			MAE:               row.MAE,
			CoherenceDelta:    row.CoherenceDelta,
			PoorFit:           row.PoorFit,
		},
		Energy: wind.EnergyProfile{
			PowerAtMostProbable: row.PowerMostProbable,
			PowerAtMaxEnergy:    row.PowerMaxEnergy,
			MeanPowerDensity:    row.MeanPowerDensity,
			CapacityFactor:      row.CapacityFactor,
			EquivalentHours:     row.EquivalentHours,
			ResourceClass:       row.ResourceClass,
		},
		Strategy:      row.Strategy,
		LowConfidence: row.LowConfidence,
		CreatedAt:     core.NewTimestamp(row.CreatedAt),
	}
}

func toDomainList(rows []assessmentRow) []*wind.Assessment {
	out := make([]*wind.Assessment, 0, len(rows))
	for i := range rows {
		out = append(out, toDomain(&rows[i]))
	}
	return out
}
