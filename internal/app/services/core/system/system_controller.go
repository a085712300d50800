package system

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SystemController struct {
	Log           *zap.Logger
	SystemUsecase SystemUsecase
}

func NewSystemController(logger *zap.Logger, systemUsecase SystemUsecase) *SystemController {
	return &SystemController{
		Log:           logger,
		SystemUsecase: systemUsecase,
	}
}

func (ctrl *SystemController) Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Home{Message: constvars.HomeMessage})
}

func (ctrl *SystemController) GetDiagnostics(w http.ResponseWriter, r *http.Request) {
	response := ctrl.SystemUsecase.GetDiagnostics(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *SystemController) GetStats(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.SystemUsecase.GetStats(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}
