package controllers

import (
	"context"
	"net/http"

	"github.com/CPU-commits/Intranet_BCatalog/forms"
	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/res"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/gin-gonic/gin"
)

type courseService interface {
	CreateCourse(ctx context.Context, claims *services.Claims, courseData *forms.CourseForm) (*models.Course, *res.ErrorRes)
	UpdateCourse(ctx context.Context, idCourse string, courseData *forms.UpdateCourseForm) (*models.CourseWithLookup, *res.ErrorRes)
	GetCourses(ctx context.Context, query *models.CourseQuery) ([]models.CourseWithLookup, *res.ErrorRes)
}

type CourseController struct {
	courseService courseService
}

// @Summary Create course
// @Desc    Create a course, durationInWeeks is derived from the dates
// @Tags    courses
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   course body     forms.CourseForm true "Course"
// @Success 201    {object} res.Response{data=models.Course}
// @Failure 400    {object} res.Response{} "Bad request - Invalid body || Category not found || Already exists"
// @Failure 401    {object} res.Response{} "Unauthorized"
// @Failure 403    {object} res.Response{} "Unauthorized role"
// @Failure 404    {object} res.Response{} "User not found"
// @Security ApiKeyAuth
// @Router  /courses [post]
func (course *CourseController) CreateCourse(c *gin.Context) {
	var courseData forms.CourseForm
	// Binding
	if err := c.ShouldBindJSON(&courseData); err != nil {
		abortBadRequest(c, err)
		return
	}
	claims, _ := services.NewClaimsFromContext(c)
	// Insert
	created, errRes := course.courseService.CreateCourse(c.Request.Context(), claims, &courseData)
	if errRes != nil {
		abortWithErrorRes(c, errRes)
		return
	}
	// Response
	c.JSON(http.StatusCreated, &res.Response{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    "Course created succesfully",
		Data:       created,
	})
}

// @Summary Update course
// @Desc    Partial update. Tags with isDeleted=true are removed by name, the rest are added
// @Tags    courses
// @Tags    roles.admin
// @Accept  json
// @Produce json
// @Param   courseId path     string                 true "MongoID"
// @Param   course   body     forms.UpdateCourseForm true "Course changes"
// @Success 200      {object} res.Response{data=models.CourseWithLookup}
// @Failure 400      {object} res.Response{} "Bad request - Invalid body || Failed to update course!"
// @Failure 401      {object} res.Response{} "Unauthorized"
// @Failure 403      {object} res.Response{} "Unauthorized role"
// @Security ApiKeyAuth
// @Router  /courses/{courseId} [put]
func (course *CourseController) UpdateCourse(c *gin.Context) {
	var courseData forms.UpdateCourseForm
	idCourse := c.Param("courseId")
	// Binding
	if err := c.ShouldBindJSON(&courseData); err != nil {
		abortBadRequest(c, err)
		return
	}
	// Update
	updated, errRes := course.courseService.UpdateCourse(c.Request.Context(), idCourse, &courseData)
	if errRes != nil {
		abortWithErrorRes(c, errRes)
		return
	}
	// Response
	c.JSON(http.StatusOK, &res.Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "course is updated succesfully",
		Data:       updated,
	})
}

// GetCourses reports meta.total as the size of the returned page
//
// @Summary Get courses
// @Desc    Filter, sort and paginate courses
// @Tags    courses
// @Accept  json
// @Produce json
// @Param   page            query    int    false "Page" default(1)
// @Param   limit           query    int    false "Page size" default(10) maximum(100)
// @Param   sortBy          query    string false "Sort field" default(startDate)
// @Param   sortOrder       query    string false "asc or desc" default(asc)
// @Param   minPrice        query    number false "Lower price bound, needs maxPrice"
// @Param   maxPrice        query    number false "Upper price bound, needs minPrice"
// @Param   tags            query    string false "Tag name"
// @Param   startDate       query    string false "Earliest startDate, needs endDate"
// @Param   endDate         query    string false "Latest endDate, needs startDate"
// @Param   language        query    string false "Language"
// @Param   provider        query    string false "Provider"
// @Param   durationInWeeks query    int    false "Duration in weeks"
// @Param   level           query    string false "Beginner, Intermediate or Advanced"
// @Success 200             {object} res.Response{data=[]models.CourseWithLookup,meta=res.Meta}
// @Failure 400             {object} res.Response{} "Bad request - Invalid query || Failed to fetch courses"
// @Router  /courses [get]
func (course *CourseController) GetCourses(c *gin.Context) {
	var queryData forms.CourseQueryForm
	if err := c.ShouldBindQuery(&queryData); err != nil {
		abortBadRequest(c, err)
		return
	}
	query := queryData.ToQuery()
	// Query
	courses, errRes := course.courseService.GetCourses(c.Request.Context(), query)
	if errRes != nil {
		abortWithErrorRes(c, errRes)
		return
	}
	// Response
	c.JSON(http.StatusOK, &res.Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "Courses retrieved successfully",
		Meta: &res.Meta{
			Page:  int(query.Page),
			Limit: int(query.Limit),
			Total: len(courses),
		},
		Data: courses,
	})
}

func NewCourseController(courseService courseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}
