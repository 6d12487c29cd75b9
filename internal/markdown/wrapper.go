// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

// documentHead and documentFoot form the standalone document shell for
// wrapped output. The stylesheet is embedded so a wrapped document needs
// no external assets, and it includes the chroma token classes emitted
// by the class-based highlighter.
const documentHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Markdown Document</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 40px 20px;
            background: #fff;
        }
        .markdown-body {
            box-sizing: border-box;
            min-width: 200px;
            max-width: 100%;
        }
        .markdown-body h1, .markdown-body h2, .markdown-body h3,
        .markdown-body h4, .markdown-body h5, .markdown-body h6 {
            margin-top: 24px;
            margin-bottom: 16px;
            font-weight: 600;
            line-height: 1.25;
        }
        .markdown-body h1 {
            font-size: 2em;
            border-bottom: 1px solid #eaecef;
            padding-bottom: 0.3em;
        }
        .markdown-body h2 {
            font-size: 1.5em;
            border-bottom: 1px solid #eaecef;
            padding-bottom: 0.3em;
        }
        .markdown-body h3 {
            font-size: 1.25em;
        }
        .markdown-body p {
            margin-bottom: 16px;
        }
        .markdown-body code {
            background: #f6f8fa;
            border-radius: 3px;
            padding: 0.2em 0.4em;
            font-size: 85%;
        }
        .markdown-body pre {
            background: #f6f8fa;
            border-radius: 6px;
            padding: 16px;
            overflow: auto;
            margin-bottom: 16px;
        }
        .markdown-body pre code {
            background: transparent;
            padding: 0;
            font-size: 100%;
        }
        .markdown-body blockquote {
            border-left: 4px solid #dfe2e5;
            padding: 0 16px;
            color: #6a737d;
            margin: 0 0 16px 0;
        }
        .markdown-body ul, .markdown-body ol {
            padding-left: 2em;
            margin-bottom: 16px;
        }
        .markdown-body li {
            margin-bottom: 0.25em;
        }
        .markdown-body table {
            border-collapse: collapse;
            width: 100%;
            margin: 16px 0;
        }
        .markdown-body table th, .markdown-body table td {
            border: 1px solid #dfe2e5;
            padding: 6px 13px;
        }
        .markdown-body table th {
            background: #f6f8fa;
            font-weight: 600;
        }
        .markdown-body table tr:nth-child(even) {
            background: #f8f8f8;
        }
        .markdown-body img {
            max-width: 100%;
            height: auto;
            display: block;
            margin: 16px 0;
        }
        .markdown-body a {
            color: #0366d6;
            text-decoration: none;
        }
        .markdown-body a:hover {
            text-decoration: underline;
        }
        .markdown-body hr {
            border: none;
            border-top: 1px solid #eaecef;
            height: 1px;
            margin: 24px 0;
        }
        /* chroma token classes (class-based highlighting) */
        .chroma {
            background: #f6f8fa;
            color: #24292e;
        }
        .chroma .c, .chroma .c1, .chroma .cm, .chroma .cs {
            color: #6a737d;
            font-style: italic;
        }
        .chroma .k, .chroma .kc, .chroma .kd, .chroma .kn,
        .chroma .kp, .chroma .kr {
            color: #d73a49;
        }
        .chroma .kt {
            color: #6f42c1;
        }
        .chroma .m, .chroma .mi, .chroma .mf, .chroma .mh,
        .chroma .mo, .chroma .kc {
            color: #005cc5;
        }
        .chroma .s, .chroma .s1, .chroma .s2, .chroma .sb,
        .chroma .sd, .chroma .se, .chroma .sh {
            color: #032f62;
        }
        .chroma .nf, .chroma .nc, .chroma .nn {
            color: #6f42c1;
        }
        .chroma .nt, .chroma .na {
            color: #22863a;
        }
        .chroma .nb, .chroma .bp, .chroma .nv {
            color: #005cc5;
        }
        .chroma .sr {
            color: #e36209;
        }
        .chroma .o, .chroma .ow {
            color: #d73a49;
        }
        .chroma .gd {
            background: #ffeef0;
        }
        .chroma .gi {
            background: #f0fff4;
        }
        .chroma .ge {
            font-style: italic;
        }
        .chroma .gs {
            font-weight: bold;
        }
    </style>
</head>
<body>
    <div class="markdown-body">
`

const documentFoot = `
    </div>
</body>
</html>
`
