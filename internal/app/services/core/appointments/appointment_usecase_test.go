package appointments

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, limit int64) ([]models.Appointment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, limit int64) ([]models.Patient, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, limit int64) ([]models.Doctor, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validCreateRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		PatientID: "64f1b5ec9d3f4a0001a2b3c4",
		DoctorID:  "64f1b5ec9d3f4a0001a2b3c5",
		StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateAppointment_ReferenceProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("Both references present proceeds with insert", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		doctorRepo := new(MockDoctorRepository)
		uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

		patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil).Once()
		doctorRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil).Once()
		appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("64f1b5ec9d3f4a0001a2b3c6", nil).Once()

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "64f1b5ec9d3f4a0001a2b3c6", response.ID)
		appointmentRepo.AssertExpectations(t)
	})

	t.Run("Malformed references skip the probe and still insert", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		doctorRepo := new(MockDoctorRepository)
		uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

		appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("64f1b5ec9d3f4a0001a2b3c6", nil).Once()

		request := validCreateRequest()
		request.PatientID = "legacy-patient-17"
		request.DoctorID = "legacy-doctor-4"

		response, err := uc.CreateAppointment(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "64f1b5ec9d3f4a0001a2b3c6", response.ID)
		patientRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
		doctorRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
		appointmentRepo.AssertExpectations(t)
	})

	t.Run("Well-formed but absent patient fails with 404 and no insert", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		doctorRepo := new(MockDoctorRepository)
		uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

		patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil).Once()

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, "Patient not found", customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Well-formed but absent doctor fails with 404 and no insert", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		doctorRepo := new(MockDoctorRepository)
		uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

		patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil).Once()
		doctorRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, nil).Once()

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, "Doctor not found", customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Probe store error propagates", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		doctorRepo := new(MockDoctorRepository)
		uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

		patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(false, exceptions.ErrMongoDBFindDocument(assert.AnError)).Once()

		response, err := uc.CreateAppointment(ctx, validCreateRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
		appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCreateAppointment_Defaults(t *testing.T) {
	ctx := context.Background()

	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)
	doctorRepo := new(MockDoctorRepository)
	uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

	patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)
	doctorRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)

	var persisted *models.Appointment
	appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.Appointment)
		}).
		Return("64f1b5ec9d3f4a0001a2b3c6", nil)

	_, err := uc.CreateAppointment(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, 30, persisted.DurationMinutes)
	assert.Equal(t, "scheduled", persisted.Status)
}

func TestCreateAppointment_Validation(t *testing.T) {
	ctx := context.Background()

	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)
	doctorRepo := new(MockDoctorRepository)
	uc := NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo)

	patientRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)
	doctorRepo.On("ExistsByID", mock.Anything, mock.Anything).Return(true, nil)
	appointmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("64f1b5ec9d3f4a0001a2b3c6", nil)

	t.Run("Missing patient_id is rejected", func(t *testing.T) {
		request := validCreateRequest()
		request.PatientID = ""

		_, err := uc.CreateAppointment(ctx, request)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("Missing start_time is rejected", func(t *testing.T) {
		request := validCreateRequest()
		request.StartTime = time.Time{}

		_, err := uc.CreateAppointment(ctx, request)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("Duration bounds are inclusive", func(t *testing.T) {
		for _, duration := range []int{5, 240} {
			duration := duration
			request := validCreateRequest()
			request.DurationMinutes = &duration

			_, err := uc.CreateAppointment(ctx, request)
			assert.NoError(t, err, "duration %d should be accepted", duration)
		}

		for _, duration := range []int{0, 4, 241} {
			duration := duration
			request := validCreateRequest()
			request.DurationMinutes = &duration

			_, err := uc.CreateAppointment(ctx, request)
			var customErr *exceptions.CustomError
			assert.True(t, errors.As(err, &customErr), "duration %d should be rejected", duration)
			assert.Equal(t, 422, customErr.StatusCode)
		}
	})

	t.Run("Explicit zero duration is rejected, not defaulted", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		uc := NewAppointmentUsecase(repo, patientRepo, doctorRepo)

		zero := 0
		request := validCreateRequest()
		request.DurationMinutes = &zero

		response, err := uc.CreateAppointment(ctx, request)

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, 422, customErr.StatusCode)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListAppointments(t *testing.T) {
	ctx := context.Background()

	appointmentRepo := new(MockAppointmentRepository)
	uc := NewAppointmentUsecase(appointmentRepo, new(MockPatientRepository), new(MockDoctorRepository))

	storedID := primitive.NewObjectID()
	appointmentRepo.On("FindAll", mock.Anything, int64(100)).Return([]models.Appointment{
		{
			ID:              storedID,
			PatientID:       "64f1b5ec9d3f4a0001a2b3c4",
			DoctorID:        "64f1b5ec9d3f4a0001a2b3c5",
			StartTime:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			DurationMinutes: 45,
			Status:          "scheduled",
		},
	}, nil).Once()

	response, err := uc.ListAppointments(ctx, 100)

	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, storedID.Hex(), response[0].ID)
	assert.Equal(t, "2026-09-01T10:00:00Z", response[0].StartTime)
	assert.Equal(t, 45, response[0].DurationMinutes)
	appointmentRepo.AssertExpectations(t)
}
