// Package docs registers the swagger document served under /swagger.
// Regenerate with `swag init` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {"get": {"tags": ["系统"], "summary": "健康检查", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/session/login": {"post": {"tags": ["会话"], "summary": "以学生或教师身份登录", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/session/logout": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["会话"], "summary": "退出登录", "responses": {"200": {"description": "OK"}}}},
        "/api/session": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["会话"], "summary": "当前身份", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/insights": {"post": {"tags": ["AI"], "summary": "生成学习建议", "responses": {"200": {"description": "OK"}, "402": {"description": "Payment Required"}, "429": {"description": "Too Many Requests"}, "500": {"description": "Internal Server Error"}}}},
        "/api/attachments": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["文件"], "summary": "上传附件", "responses": {"201": {"description": "Created"}}}},
        "/api/assignments": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["作业"], "summary": "作业列表", "responses": {"200": {"description": "OK"}}}},
        "/api/assignments/visit": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["通知"], "summary": "标记作业已读", "responses": {"200": {"description": "OK"}}}},
        "/api/events": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["社团活动"], "summary": "活动列表", "responses": {"200": {"description": "OK"}}}},
        "/api/events/visit": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["通知"], "summary": "标记活动已读", "responses": {"200": {"description": "OK"}}}},
        "/api/notifications": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["通知"], "summary": "未读角标", "responses": {"200": {"description": "OK"}}}},
        "/api/notifications/stream": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["通知"], "summary": "角标推送(SSE)", "responses": {"200": {"description": "OK"}}}},
        "/api/achievements": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["成就"], "summary": "提交成就", "responses": {"201": {"description": "Created"}}}},
        "/api/achievements/my": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["成就"], "summary": "我的成就", "responses": {"200": {"description": "OK"}}}},
        "/api/feedback": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["反馈"], "summary": "提交反馈", "responses": {"201": {"description": "Created"}}}},
        "/api/feedback/my": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["反馈"], "summary": "我的反馈", "responses": {"200": {"description": "OK"}}}},
        "/api/submissions/research": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["提交"], "summary": "提交科研成果", "responses": {"201": {"description": "Created"}}}},
        "/api/submissions/internship": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["提交"], "summary": "提交实习经历", "responses": {"201": {"description": "Created"}}}},
        "/api/submissions/my": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["提交"], "summary": "我的提交", "responses": {"200": {"description": "OK"}}}},
        "/api/performance/verify": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩分析"], "summary": "验证学号并生成分析", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/dashboard": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["仪表盘"], "summary": "学生仪表盘", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/dashboard": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["仪表盘"], "summary": "教师仪表盘", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/activities": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["仪表盘"], "summary": "最近动态", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/assignments": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["作业"], "summary": "发布作业", "responses": {"201": {"description": "Created"}}}},
        "/api/teacher/assignments/{id}": {"delete": {"security": [{"ApiKeyAuth": []}], "tags": ["作业"], "summary": "删除作业", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/teacher/events": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["社团活动"], "summary": "发布活动", "responses": {"201": {"description": "Created"}}}},
        "/api/teacher/events/{id}": {"delete": {"security": [{"ApiKeyAuth": []}], "tags": ["社团活动"], "summary": "删除活动", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/teacher/achievements": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["成就"], "summary": "全部成就", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/feedback": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["反馈"], "summary": "全部反馈", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/submissions": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["审核"], "summary": "提交列表", "responses": {"200": {"description": "OK"}}}},
        "/api/teacher/submissions/{id}/status": {"patch": {"security": [{"ApiKeyAuth": []}], "tags": ["审核"], "summary": "审核提交", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/api/teacher/dataset": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩分析"], "summary": "数据集状态", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["成绩分析"], "summary": "上传成绩数据集", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Academic Dashboard API",
	Description:      "学生/教师学业仪表盘后端服务。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
