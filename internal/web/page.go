package web

// playgroundPage posts the JSON in the editor to the API and shows the code
// through textContent, so generated markup is never parsed by the browser.
const playgroundPage = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>landinggen</title>
    <style>
        :root {
            --bg-primary: #0F172A;
            --bg-secondary: #1E293B;
            --accent: #0F9E99;
            --text-primary: #F8FAFC;
            --border: #334155;
            --error: #F87171;
        }

        body {
            margin: 0;
            font-family: 'Inter', sans-serif;
            background-color: var(--bg-primary);
            color: var(--text-primary);
            height: 100vh;
            display: flex;
            flex-direction: column;
        }

        header {
            background-color: var(--bg-secondary);
            padding: 1rem 2rem;
            border-bottom: 1px solid var(--border);
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        h1 { font-size: 1.25rem; margin: 0; color: var(--accent); }

        .main-container { display: flex; flex: 1; gap: 1rem; padding: 1rem; overflow: hidden; }

        textarea, pre {
            flex: 1;
            margin: 0;
            padding: 1rem;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            border: 1px solid var(--border);
            border-radius: 0.5rem;
            font-family: 'JetBrains Mono', monospace;
            font-size: 0.85rem;
            overflow: auto;
        }

        .run-btn, .copy-btn {
            background-color: var(--accent);
            color: white;
            border: none;
            padding: 0.5rem 1.5rem;
            border-radius: 0.375rem;
            font-weight: 600;
            cursor: pointer;
        }
    </style>
</head>
<body>
    <header>
        <h1>landinggen</h1>
        <div>
            <select id="component">
                <option value="hero">Hero</option>
                <option value="navbar">Navbar</option>
            </select>
            <button class="run-btn" onclick="generate()">Generate Code</button>
            <button class="copy-btn" onclick="copyCode()">Copy Code</button>
        </div>
    </header>
    <div class="main-container">
        <textarea id="config" spellcheck="false">{
  "heading": "Build faster",
  "description": "Ship your landing page today",
  "layout": "split",
  "font": "sans",
  "background": {"kind": "gradient", "from": "#3b82f6", "to": "#06b6d4"},
  "buttons": {"enabled": true, "primary": {"text": "Get Started", "color": "#3b82f6"}}
}</textarea>
        <pre id="code"></pre>
    </div>
    <script>
        async function generate() {
            const out = document.getElementById('code');
            const component = document.getElementById('component').value;
            try {
                const response = await fetch('/api/' + component, {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: document.getElementById('config').value
                });
                const result = await response.json();
                out.style.color = result.error ? 'var(--error)' : '';
                out.textContent = result.error ? result.error : result.code;
            } catch (e) {
                out.style.color = 'var(--error)';
                out.textContent = e.toString();
            }
        }

        async function copyCode() {
            await navigator.clipboard.writeText(document.getElementById('code').textContent);
        }
    </script>
</body>
</html>
`
