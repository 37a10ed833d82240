package medical

import "context"

type Repository interface {
	AddMedicalRecord(ctx context.Context, f Fields) (int64, error)
	ListMedicalRecords(ctx context.Context, petID int64) ([]Record, error)
}
