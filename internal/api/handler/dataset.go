package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/influencer-analytics-api/pkg/apiErrors"
)

const maxUploadSize = 10 << 20 // 10 MB

// GetDatasetSummary descreve o snapshot ativo: tamanho das coleções e o
// diagnóstico de registros órfãos
func GetDatasetSummary(sessions *store.SessionStore, service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := service.DatasetSummary(sessions.Snapshot())

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(summary)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do resumo do snapshot:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UploadDatasetCSV substitui uma coleção do snapshot pelos registros do CSV
// enviado. O arquivo pode vir como multipart (campo "file") ou no corpo da
// requisição
func UploadDatasetCSV(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadDatasetCSV")

		collection := httprouter.ParamsFromContext(r.Context()).ByName("collection")
		if collection == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Coleção de destino não especificada", nil)
			return
		}

		reader, err := csvReader(r)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o arquivo enviado", nil)
			return
		}

		count, err := service.UploadCSV(r.Context(), ingesting.Collection(collection), reader)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, ingesting.ErrUnknownCollection):
				apiErrors.WriteError(w, apiErrors.ErrUnknownCollection, "Coleção inválida. Valores aceitos: influencers, posts, tracking, payouts", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidCSV, "CSV inválido ou ilegível", map[string]any{
					"error": err.Error(),
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"collection": collection,
			"records":    count,
		})
	}
}

// AddManualEntry acrescenta ao snapshot os registros ligados de uma entrada
// manual de campanha
func AddManualEntry(service ingesting.Ingester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddManualEntry")

		var entry ingesting.ManualEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AddManualEntry(r.Context(), entry); err != nil {
			logrus.Error(err)

			if errors.Is(err, ingesting.ErrMissingEntryFields) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao adicionar entrada manual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Entrada manual adicionada com sucesso",
		})
	}
}

// csvReader extrai o conteúdo CSV da requisição, aceitando multipart ou o
// corpo puro
func csvReader(r *http.Request) (io.Reader, error) {
	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, err
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}

	return http.MaxBytesReader(nil, r.Body, maxUploadSize), nil
}
