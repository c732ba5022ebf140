// @title           stack-underflow API
// @version         1.0
// @description     In-memory questions and answers service.
// @BasePath        /
package api
