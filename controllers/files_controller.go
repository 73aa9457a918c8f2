package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/DanielJacob1998/capstone/config"
	models "github.com/DanielJacob1998/capstone/models"
	store "github.com/DanielJacob1998/capstone/store"
	utils "github.com/DanielJacob1998/capstone/utils"
)

// ---------------- SCAN ----------------
func ScanFiles(details *store.DetailsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var opts utils.ScanOptions
		if err := c.ShouldBindJSON(&opts); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		files, err := utils.ScanDirectory(opts)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var totalSize int64
		for _, f := range files {
			totalSize += f.FileSize
		}
		details.Record(opts.Directory, len(files), totalSize)

		c.JSON(http.StatusOK, files)
	}
}

// ---------------- PARSE CALENDAR ----------------
// Each VEVENT in the uploaded .ics files becomes a candidate event and
// goes through the full creation protocol one at a time. Rejections
// (validation, duplicate, overlap) land in the errors list; they never
// abort the batch.
func ParseCalendar(events *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads, ok := formFiles(c)
		if !ok {
			return
		}

		createdBy := c.PostForm("created_by")
		if createdBy == "" {
			createdBy = c.GetString("user_id")
		}
		groupID := c.PostForm("group_id")
		subgroupID := c.PostForm("subgroup_id")
		visibility := c.PostForm("visibility")

		created := []models.Event{}
		batchErrs := []utils.RowError{}
		for _, fh := range uploads {
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
				return
			}
			candidates, rowErrs, err := utils.ParseCalendarFile(file)
			file.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err.Error(),
					"file":  fh.Filename,
				})
				return
			}
			batchErrs = append(batchErrs, rowErrs...)

			for i, cand := range candidates {
				cand.CreatedBy = createdBy
				cand.GroupID = groupID
				cand.SubgroupID = subgroupID
				cand.Visibility = visibility

				event, err := events.CheckAndInsert(cand)
				if err != nil {
					batchErrs = append(batchErrs, utils.RowError{
						Index: i,
						Input: cand.Title,
						Error: err.Error(),
					})
					continue
				}
				created = append(created, event)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"events": created,
			"errors": batchErrs,
		})
	}
}

// ---------------- PARSE FINANCE ----------------
func ParseFinance() gin.HandlerFunc {
	return func(c *gin.Context) {
		uploads, ok := formFiles(c)
		if !ok {
			return
		}

		transactions := []models.Transaction{}
		rowErrs := []utils.RowError{}
		for _, fh := range uploads {
			file, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
				return
			}
			result, err := utils.ParseFinanceCSV(file)
			file.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": err.Error(),
					"file":  fh.Filename,
				})
				return
			}
			transactions = append(transactions, result.Transactions...)
			rowErrs = append(rowErrs, result.Errors...)
		}

		c.JSON(http.StatusOK, gin.H{
			"transactions": transactions,
			"errors":       rowErrs,
		})
	}
}

// ---------------- DETAILS ----------------
func GetDetails(details *store.DetailsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, details.All())
	}
}

func SaveDetails(cfg *config.Config, details *store.DetailsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MongoClient == nil {
			c.JSON(http.StatusOK, gin.H{"message": "persistence not configured, details kept in memory"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := details.SaveTo(ctx, cfg.DetailsCollection()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save details"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "File details saved successfully"})
	}
}

// formFiles pulls the uploaded files (field "files", falling back to
// "file") and enforces the upload size cap. It writes the error
// response itself when the form is unusable.
func formFiles(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return nil, false
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		uploads = form.File["file"]
	}
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return nil, false
	}
	for _, fh := range uploads {
		if fh.Size > utils.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "file too large",
				"file":  fh.Filename,
			})
			return nil, false
		}
	}
	return uploads, true
}
