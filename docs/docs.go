// Package docs 由控制器上的 swag 注释整理而成，注释改动后需同步更新。
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
        "/auth/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "认证"
                ],
                "summary": "当前设备",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/auth/token": {
            "post": {
                "description": "使用口令换取 JWT，仅在开启认证时可用",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "认证"
                ],
                "summary": "获取设备令牌",
                "parameters": [
                    {
                        "description": "设备名与口令",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.TokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.TokenResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "下载 {version, exportedAt, data} 格式的 JSON 文件",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "备份"
                ],
                "summary": "导出备份",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ExportFile"
                        }
                    }
                }
            }
        },
        "/export/archives": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "导出并上传到配置的存储（本地目录、MinIO 或 OSS）",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "备份"
                ],
                "summary": "归档备份",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.ArchiveResult"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/export/archives/{name}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "备份"
                ],
                "summary": "下载归档",
                "parameters": [
                    {
                        "type": "string",
                        "description": "文件名",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ExportFile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/export/archives/{name}/restore": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "备份"
                ],
                "summary": "从归档恢复",
                "parameters": [
                    {
                        "type": "string",
                        "description": "文件名",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/goals": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "全部目标及今天是否完成",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "每日目标"
                ],
                "summary": "今日目标",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/service.TodayGoal"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "每日目标"
                ],
                "summary": "添加目标",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "目标内容",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.GoalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.DailyGoal"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/goals/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "每日目标"
                ],
                "summary": "修改目标",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "目标ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "目标内容",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.GoalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "每日目标"
                ],
                "summary": "删除目标",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "目标ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/goals/{id}/toggle": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同一天内再次调用恢复原状",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "每日目标"
                ],
                "summary": "切换今日完成",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "目标ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.ToggleResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "检查服务状态",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "系统"
                ],
                "summary": "健康检查",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/import": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "校验通过后覆盖全部数据，校验失败不做任何修改",
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "备份"
                ],
                "summary": "导入备份",
                "parameters": [
                    {
                        "type": "file",
                        "description": "备份文件",
                        "name": "file",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/journal": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "按完成时间倒序，可按模块过滤",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "日志"
                ],
                "summary": "日志列表",
                "parameters": [
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "moduleId",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/service.JournalItem"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/journal/{id}/{day}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "修改已完成某天的反思和任务，不改变完成时间",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "日志"
                ],
                "summary": "编辑日志",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "第几天",
                        "name": "day",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "反思与任务",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.CompleteDayRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/modules": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "全部模块及各自进度",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "模块列表",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/controller.ModuleItem"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/modules/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "模块详情",
                "parameters": [
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.ModuleDetail"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/modules/{id}/days/{day}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "返回某天的阅读、任务和反思提示，以及进入检查结果",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "课程内容",
                "parameters": [
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "第几天",
                        "name": "day",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.LessonResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/modules/{id}/days/{day}/complete": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "不经过课程向导记录完成，重复提交只覆盖日志",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "直接完成某天",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "第几天",
                        "name": "day",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "反思与任务",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.CompleteDayRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/modules/{id}/lock": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "下一天时间锁",
                "parameters": [
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.LockView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/modules/{id}/progress": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "重置模块进度",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/modules/{id}/skip-wait": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "需要显式确认，本地零点前放行下一天",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "跳过等待",
                "parameters": [
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "确认",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.SkipWaitRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.LockView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/modules/{id}/start": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "开始或继续一个模块，未完成的旅程最多 5 个",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "模块"
                ],
                "summary": "开始模块",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "模块ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/notifications/permission": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "任一通道可用即为 granted，没有通道时为 unsupported",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "通知"
                ],
                "summary": "通知权限",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.PermissionResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/notifications/scheduled": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "通知"
                ],
                "summary": "定时通知",
                "parameters": [
                    {
                        "description": "通知内容与发送时间",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.ScheduleRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.ScheduledNotification"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "通知"
                ],
                "summary": "待发送的定时通知",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.ScheduledNotification"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/notifications/scheduled/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "通知"
                ],
                "summary": "取消定时通知",
                "parameters": [
                    {
                        "type": "string",
                        "description": "通知ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/notifications/test": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "通知"
                ],
                "summary": "发送测试通知",
                "parameters": [
                    {
                        "description": "通知内容",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/model.Notification"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/notifications/ws": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "建立 WebSocket 连接接收通知，并上报课程页面可见性",
                "tags": [
                    "通知"
                ],
                "summary": "通知推送连接",
                "parameters": [
                    {
                        "type": "string",
                        "description": "设备令牌",
                        "name": "token",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/onboarding": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "根据问卷答案推荐模块并标记引导完成",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "引导"
                ],
                "summary": "完成引导",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "姓名与问卷答案",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.OnboardingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/onboarding/quiz": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "引导"
                ],
                "summary": "引导问卷",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/model.QuizQuestion"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/preferences/language": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "偏好设置"
                ],
                "summary": "设置语言",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "语言",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.LanguageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/preferences/reminder": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "偏好设置"
                ],
                "summary": "设置每日提醒",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "提醒设置，时间格式 HH:mm",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.ReminderSettings"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/preferences/theme": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "偏好设置"
                ],
                "summary": "设置主题",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "主题 light/dark/system",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.ThemeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/profile": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "只修改请求中出现的字段",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "状态"
                ],
                "summary": "更新个人资料",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    },
                    {
                        "description": "个人资料",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProfileUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/state": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "获取完整的用户状态，ETag 为当前 revision",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "状态"
                ],
                "summary": "获取状态",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "清除全部数据，恢复默认状态",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "状态"
                ],
                "summary": "重置应用",
                "parameters": [
                    {
                        "type": "string",
                        "description": "期望的 revision",
                        "name": "If-Match",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/model.UserState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "412": {
                        "description": "Precondition Failed",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "连续天数、经验值、等级、进行中的旅程与徽章",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "统计"
                ],
                "summary": "个人统计",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/stats.Summary"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "通过进入检查后创建会话。未解锁返回 403 和重定向目标，今日已完成返回 423 和倒计时",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "开始课程",
                "parameters": [
                    {
                        "description": "模块与天数",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.OpenSessionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.OpenSessionResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.EntryDenial"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "423": {
                        "description": "Locked",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.EntryDenial"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "会话状态",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "结算本次阅读和学习时长",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "结束会话",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.UsageResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/back": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "返回上一步",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/confirm-reading": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "总是接受，阅读不足 5 分钟时 skipped 为 true",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "确认阅读",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controller.ConfirmReadingResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/util.Response"
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/deepen": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "换一个反思提示，非空内容后追加空行",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "深入反思",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/reflection": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "更新反思草稿",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "反思内容",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.ReflectionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/save": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "记录当天完成，返回新状态和下一天的时间锁",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "保存并完成",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "最终反思内容",
                        "name": "request",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/controller.SaveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SaveResult"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/task": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "提交任务",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "任务回答",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.TaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/wizard/sessions/{id}/visibility": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "页面隐藏时暂停计时",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "课程向导"
                ],
                "summary": "页面可见性",
                "parameters": [
                    {
                        "type": "string",
                        "description": "会话ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "是否可见",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controller.VisibilityRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/util.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.SessionView"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controller.CompleteDayRequest": {
            "type": "object",
            "properties": {
                "reflection": {
                    "type": "string"
                },
                "taskResponse": {
                    "type": "string"
                }
            }
        },
        "controller.ConfirmReadingResponse": {
            "type": "object",
            "properties": {
                "session": {
                    "$ref": "#/definitions/service.SessionView"
                },
                "skipped": {
                    "type": "boolean"
                }
            }
        },
        "controller.DayItem": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "title": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "completed": {
                    "type": "boolean"
                }
            }
        },
        "controller.EntryDenial": {
            "type": "object",
            "properties": {
                "outcome": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "nextDay": {
                    "type": "integer"
                },
                "redirect": {
                    "type": "string"
                },
                "unlockAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "remainingSeconds": {
                    "type": "integer"
                }
            }
        },
        "controller.GoalRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "controller.LanguageRequest": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string"
                }
            }
        },
        "controller.LessonResponse": {
            "type": "object",
            "properties": {
                "moduleId": {
                    "type": "string"
                },
                "lesson": {
                    "$ref": "#/definitions/model.LessonDay"
                },
                "entry": {
                    "$ref": "#/definitions/wizard.Entry"
                }
            }
        },
        "controller.ModuleDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "title": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "description": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "totalDays": {
                    "type": "integer"
                },
                "categoryInfo": {
                    "$ref": "#/definitions/model.CategoryInfo"
                },
                "journey": {
                    "$ref": "#/definitions/stats.Journey"
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controller.DayItem"
                    }
                }
            }
        },
        "controller.ModuleItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "title": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "description": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "totalDays": {
                    "type": "integer"
                },
                "categoryInfo": {
                    "$ref": "#/definitions/model.CategoryInfo"
                },
                "journey": {
                    "$ref": "#/definitions/stats.Journey"
                }
            }
        },
        "controller.OnboardingRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "controller.OpenSessionRequest": {
            "type": "object",
            "properties": {
                "moduleId": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                }
            }
        },
        "controller.OpenSessionResponse": {
            "type": "object",
            "properties": {
                "session": {
                    "$ref": "#/definitions/service.SessionView"
                },
                "lesson": {
                    "$ref": "#/definitions/model.LessonDay"
                }
            }
        },
        "controller.PermissionResponse": {
            "type": "object",
            "properties": {
                "permission": {
                    "type": "string"
                },
                "channels": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.ChannelStatus"
                    }
                }
            }
        },
        "controller.ReflectionRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "controller.SaveRequest": {
            "type": "object",
            "properties": {
                "reflection": {
                    "type": "string"
                }
            }
        },
        "controller.ScheduleRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "targetUrl": {
                    "type": "string"
                },
                "at": {
                    "type": "string",
                    "format": "date-time"
                },
                "delaySeconds": {
                    "type": "integer"
                }
            }
        },
        "controller.SkipWaitRequest": {
            "type": "object",
            "properties": {
                "confirm": {
                    "type": "boolean"
                }
            }
        },
        "controller.TaskRequest": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "string"
                }
            }
        },
        "controller.ThemeRequest": {
            "type": "object",
            "properties": {
                "theme": {
                    "type": "string"
                }
            }
        },
        "controller.ToggleResponse": {
            "type": "object",
            "properties": {
                "doneToday": {
                    "type": "boolean"
                },
                "state": {
                    "$ref": "#/definitions/model.UserState"
                }
            }
        },
        "controller.TokenRequest": {
            "type": "object",
            "properties": {
                "device": {
                    "type": "string"
                },
                "passcode": {
                    "type": "string"
                }
            }
        },
        "controller.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "controller.UsageResponse": {
            "type": "object",
            "properties": {
                "readingSeconds": {
                    "type": "integer"
                },
                "totalSeconds": {
                    "type": "integer"
                }
            }
        },
        "controller.VisibilityRequest": {
            "type": "object",
            "properties": {
                "visible": {
                    "type": "boolean"
                }
            }
        },
        "model.CategoryInfo": {
            "type": "object",
            "properties": {
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "model.DailyGoal": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "model.ExportFile": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "integer"
                },
                "exportedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "data": {
                    "$ref": "#/definitions/model.UserState"
                }
            }
        },
        "model.JournalEntry": {
            "type": "object",
            "properties": {
                "reflection": {
                    "type": "string"
                },
                "taskResponse": {
                    "type": "string"
                },
                "completedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.LessonDay": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "title": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "reading": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "task": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "prompts": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "string"
                        }
                    }
                },
                "vocabulary": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.VocabularyItem"
                    }
                }
            }
        },
        "model.ModuleProgress": {
            "type": "object",
            "properties": {
                "startedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastAccessedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "completedDays": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "journal": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.JournalEntry"
                    }
                }
            }
        },
        "model.Notification": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "body": {
                    "type": "string"
                },
                "targetUrl": {
                    "type": "string"
                }
            }
        },
        "model.QuizOption": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "label": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "model.QuizQuestion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "prompt": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "options": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.QuizOption"
                    }
                }
            }
        },
        "model.ReminderSettings": {
            "type": "object",
            "properties": {
                "enabled": {
                    "type": "boolean"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "model.ScheduledNotification": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "at": {
                    "type": "string",
                    "format": "date-time"
                },
                "notification": {
                    "$ref": "#/definitions/model.Notification"
                }
            }
        },
        "model.TimeSpent": {
            "type": "object",
            "properties": {
                "reading": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "lastSessionStart": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.UserState": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                },
                "joinedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "language": {
                    "type": "string"
                },
                "theme": {
                    "type": "string"
                },
                "reminder": {
                    "$ref": "#/definitions/model.ReminderSettings"
                },
                "hasCompletedOnboarding": {
                    "type": "boolean"
                },
                "recommendedModuleId": {
                    "type": "string"
                },
                "progress": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/model.ModuleProgress"
                    }
                },
                "dailyGoals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.DailyGoal"
                    }
                },
                "timeSpent": {
                    "$ref": "#/definitions/model.TimeSpent"
                },
                "revision": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "model.VocabularyItem": {
            "type": "object",
            "properties": {
                "term": {
                    "type": "string"
                },
                "meaning": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "service.ArchiveResult": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                }
            }
        },
        "service.ChannelStatus": {
            "type": "object",
            "properties": {
                "channel": {
                    "type": "string"
                },
                "permission": {
                    "type": "string"
                }
            }
        },
        "service.JournalItem": {
            "type": "object",
            "properties": {
                "moduleId": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "reflection": {
                    "type": "string"
                },
                "taskResponse": {
                    "type": "string"
                },
                "completedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "service.LockView": {
            "type": "object",
            "properties": {
                "locked": {
                    "type": "boolean"
                },
                "overridden": {
                    "type": "boolean"
                },
                "unlockAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "remainingSeconds": {
                    "type": "integer"
                }
            }
        },
        "service.ProfileUpdate": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                }
            }
        },
        "service.SaveResult": {
            "type": "object",
            "properties": {
                "state": {
                    "$ref": "#/definitions/model.UserState"
                },
                "lock": {
                    "$ref": "#/definitions/service.LockView"
                }
            }
        },
        "service.SessionView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "moduleId": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "step": {
                    "type": "string"
                },
                "taskResponse": {
                    "type": "string"
                },
                "reflection": {
                    "type": "string"
                },
                "prompt": {
                    "type": "string"
                },
                "visible": {
                    "type": "boolean"
                },
                "readingSeconds": {
                    "type": "integer"
                },
                "readingUnlocked": {
                    "type": "boolean"
                },
                "remainingSeconds": {
                    "type": "integer"
                },
                "readingSkipped": {
                    "type": "boolean"
                },
                "completed": {
                    "type": "boolean"
                },
                "review": {
                    "type": "boolean"
                }
            }
        },
        "service.TodayGoal": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "doneToday": {
                    "type": "boolean"
                }
            }
        },
        "stats.Badge": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "earned": {
                    "type": "boolean"
                }
            }
        },
        "stats.Journey": {
            "type": "object",
            "properties": {
                "moduleId": {
                    "type": "string"
                },
                "completedDays": {
                    "type": "integer"
                },
                "totalDays": {
                    "type": "integer"
                },
                "percent": {
                    "type": "integer"
                },
                "nextDay": {
                    "type": "integer"
                },
                "startedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastAccessedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "stats.LevelInfo": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "min": {
                    "type": "integer"
                },
                "max": {
                    "type": "integer"
                },
                "xp": {
                    "type": "integer"
                },
                "xpToNext": {
                    "type": "integer"
                },
                "progress": {
                    "type": "number"
                }
            }
        },
        "stats.Summary": {
            "type": "object",
            "properties": {
                "currentStreak": {
                    "type": "integer"
                },
                "longestStreak": {
                    "type": "integer"
                },
                "activeDays": {
                    "type": "integer"
                },
                "xp": {
                    "$ref": "#/definitions/stats.XPBreakdown"
                },
                "level": {
                    "$ref": "#/definitions/stats.LevelInfo"
                },
                "activeJourneys": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.Journey"
                    }
                },
                "activeCount": {
                    "type": "integer"
                },
                "completedJourneys": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.Journey"
                    }
                },
                "badges": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.Badge"
                    }
                },
                "timeSpent": {
                    "$ref": "#/definitions/stats.TimeTotals"
                }
            }
        },
        "stats.TimeTotals": {
            "type": "object",
            "properties": {
                "readingSeconds": {
                    "type": "integer"
                },
                "totalSeconds": {
                    "type": "integer"
                }
            }
        },
        "stats.XPBreakdown": {
            "type": "object",
            "properties": {
                "completedDays": {
                    "type": "integer"
                },
                "journalEntries": {
                    "type": "integer"
                },
                "cumulativeStreakDays": {
                    "type": "integer"
                },
                "goalCompletions": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "util.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {}
            }
        },
        "wizard.Entry": {
            "type": "object",
            "properties": {
                "outcome": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "nextDay": {
                    "type": "integer"
                },
                "unlockAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Mindset Journeys API",
	Description:      "21 天心态旅程的本地伴随服务。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
