package main

// General API documentation for swaggo. Run `swag init` to regenerate docs.
//
// @title           solverd API
// @version         1.0
// @description     HTTP status surface for native solver library preloading.
//
// @contact.name   solverd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
