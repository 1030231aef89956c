package routes

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Polceze/taskman/database"
	"github.com/Polceze/taskman/models"
	"github.com/Polceze/taskman/services"

	"github.com/gin-gonic/gin"
)

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, db, taskService) })
	group.POST("/tasks", func(c *gin.Context) { CreateTask(c, db, taskService) })
	group.GET("/tasks/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
	group.PUT("/tasks/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
	group.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, err)
		return
	}

	input, err := models.DecodeTaskCreate(body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	createdTask, err := taskService.CreateTask(c.Request.Context(), db, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdTask)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, err := parseTaskID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	task, err := taskService.GetTaskById(c.Request.Context(), db, id)
	if err != nil {
		abortWithTaskError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, err := parseTaskID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		abortWithError(c, err)
		return
	}

	input, err := models.DecodeTaskUpdate(body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	updatedTask, err := taskService.UpdateTask(c.Request.Context(), db, id, input)
	if err != nil {
		abortWithTaskError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, err := parseTaskID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	deleted, err := taskService.DeleteTask(c.Request.Context(), db, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !deleted {
		abortWithTaskError(c, id, services.ErrTaskNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	params, err := models.ParseTaskListParams(c.Request.URL.Query())
	if err != nil {
		abortWithError(c, err)
		return
	}

	tasks, total, err := taskService.GetTasks(c.Request.Context(), db, params)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TaskList{Tasks: tasks, Total: total})
}

func parseTaskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ve := &models.ValidationError{}
		ve.Add("id", "must be an integer")
		return 0, ve
	}
	return id, nil
}

func abortWithTaskError(c *gin.Context, id int64, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Task with id %d not found", id)})
		return
	}
	abortWithError(c, err)
}

// abortWithError maps validation failures to 422 and everything else to a
// generic 500. Store errors are logged, not echoed to the client.
func abortWithError(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.Errors})
		return
	}

	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
